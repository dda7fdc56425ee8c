package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// XML element names of the compte wire contract.
const (
	xmlAccountTag = "compte"
	xmlListTag    = "comptes"
)

// fillXML writes the account fields into el as child elements. A nil ID is
// omitted entirely rather than written empty.
func (a *Account) fillXML(el *etree.Element) {
	if a.ID != nil {
		el.CreateElement("id").SetText(strconv.FormatInt(*a.ID, 10))
	}
	el.CreateElement("solde").SetText(strconv.FormatFloat(a.Balance, 'f', -1, 64))
	el.CreateElement("type").SetText(string(a.Type))
	el.CreateElement("dateCreation").SetText(a.CreationDate)
}

// MarshalXML renders the account as a standalone <compte> document.
func (a *Account) MarshalXML() ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	a.fillXML(doc.CreateElement(xmlAccountTag))
	return doc.WriteToBytes()
}

// MarshalXML renders the list as a <comptes> document wrapping one
// <compte> element per account.
func (l *AccountList) MarshalXML() ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement(xmlListTag)
	for i := range l.Comptes {
		l.Comptes[i].fillXML(root.CreateElement(xmlAccountTag))
	}
	return doc.WriteToBytes()
}

// accountFromElement reads one account element. Parsing is deliberately
// non-strict: missing fields stay at their zero values and unknown child
// elements are ignored, matching the lenient converter the wire contract
// assumes.
func accountFromElement(el *etree.Element) (*Account, error) {
	a := &Account{}
	if idEl := el.FindElement("./id"); idEl != nil {
		if text := strings.TrimSpace(idEl.Text()); text != "" {
			id, err := strconv.ParseInt(text, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid id %q: %w", text, err)
			}
			a.ID = &id
		}
	}
	if soldeEl := el.FindElement("./solde"); soldeEl != nil {
		if text := strings.TrimSpace(soldeEl.Text()); text != "" {
			solde, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid solde %q: %w", text, err)
			}
			a.Balance = solde
		}
	}
	if typeEl := el.FindElement("./type"); typeEl != nil {
		a.Type = AccountType(strings.TrimSpace(typeEl.Text()))
	}
	if dateEl := el.FindElement("./dateCreation"); dateEl != nil {
		a.CreationDate = strings.TrimSpace(dateEl.Text())
	}
	return a, nil
}

// UnmarshalAccountXML parses a single account document. The root element
// name is not checked.
func UnmarshalAccountXML(data []byte) (*Account, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("empty XML document")
	}
	return accountFromElement(root)
}

// UnmarshalAccountListXML parses a wrapped list document, collecting every
// <compte> child of the root in document order.
func UnmarshalAccountListXML(data []byte) (*AccountList, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("empty XML document")
	}
	list := &AccountList{Comptes: []Account{}}
	for _, el := range root.FindElements("./" + xmlAccountTag) {
		a, err := accountFromElement(el)
		if err != nil {
			return nil, err
		}
		list.Comptes = append(list.Comptes, *a)
	}
	return list, nil
}
