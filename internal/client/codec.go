package client

import (
	"encoding/json"
	"fmt"

	"github.com/maprojet/compte-client/internal/models"
)

// codec (de)serializes request and response bodies for one wire format.
type codec interface {
	contentType() string
	encode(v any) ([]byte, error)
	decode(data []byte, out any) error
}

func newCodec(format Format) codec {
	if format == FormatXML {
		return xmlCodec{}
	}
	return jsonCodec{}
}

type jsonCodec struct{}

func (jsonCodec) contentType() string { return "application/json" }

func (jsonCodec) encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) decode(data []byte, out any) error {
	return json.Unmarshal(data, out)
}

// xmlCodec handles the account shapes the compte resource exchanges. It is
// typed rather than reflective because the XML side parses leniently via
// etree instead of struct tags.
type xmlCodec struct{}

func (xmlCodec) contentType() string { return "application/xml" }

func (xmlCodec) encode(v any) ([]byte, error) {
	switch t := v.(type) {
	case *models.Account:
		return t.MarshalXML()
	case *models.AccountList:
		return t.MarshalXML()
	}
	return nil, fmt.Errorf("xml codec cannot encode %T", v)
}

func (xmlCodec) decode(data []byte, out any) error {
	switch t := out.(type) {
	case *models.Account:
		a, err := models.UnmarshalAccountXML(data)
		if err != nil {
			return err
		}
		*t = *a
		return nil
	case *models.AccountList:
		l, err := models.UnmarshalAccountListXML(data)
		if err != nil {
			return err
		}
		*t = *l
		return nil
	}
	return fmt.Errorf("xml codec cannot decode into %T", out)
}
