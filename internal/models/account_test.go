package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBalance(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "plain decimal", input: "150.5", want: 150.5},
		{name: "integer text", input: "200", want: 200},
		{name: "surrounding whitespace", input: " 42.0 ", want: 42},
		{name: "negative", input: "-12.25", want: -12.25},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "non-numeric", input: "abc", wantErr: true},
		{name: "trailing garbage", input: "12x", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBalance(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAccountType(t *testing.T) {
	tests := []struct {
		input   string
		want    AccountType
		wantErr bool
	}{
		{input: "COURANT", want: TypeCourant},
		{input: "EPARGNE", want: TypeEpargne},
		{input: "courant", want: TypeCourant},
		{input: " epargne ", want: TypeEpargne},
		{input: "CHECKING", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseAccountType(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestAccountTypeValid(t *testing.T) {
	assert.True(t, TypeCourant.Valid())
	assert.True(t, TypeEpargne.Valid())
	assert.False(t, AccountType("SAVINGS").Valid())
	assert.False(t, AccountType("").Valid())
}

func TestAccountXMLRoundTrip(t *testing.T) {
	id := int64(7)
	in := &Account{ID: &id, Balance: 150.5, Type: TypeCourant, CreationDate: "2024-01-01"}

	data, err := in.MarshalXML()
	require.NoError(t, err)

	out, err := UnmarshalAccountXML(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestAccountXMLOmitsNilID(t *testing.T) {
	in := &Account{Balance: 99.9, Type: TypeEpargne, CreationDate: "2024-06-15"}

	data, err := in.MarshalXML()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "<id>")

	out, err := UnmarshalAccountXML(data)
	require.NoError(t, err)
	assert.Nil(t, out.ID)
	assert.Equal(t, in.Balance, out.Balance)
}

func TestAccountListXMLRoundTrip(t *testing.T) {
	id1, id2 := int64(1), int64(2)
	in := &AccountList{Comptes: []Account{
		{ID: &id1, Balance: 100, Type: TypeCourant, CreationDate: "2024-01-01"},
		{ID: &id2, Balance: 250.75, Type: TypeEpargne, CreationDate: "2024-02-02"},
	}}

	data, err := in.MarshalXML()
	require.NoError(t, err)

	out, err := UnmarshalAccountListXML(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestUnmarshalAccountListXMLLenient(t *testing.T) {
	// Unknown root name, unknown child elements, indentation: all tolerated.
	raw := `<?xml version="1.0"?>
	<listeComptes>
		<compte>
			<id>1</id>
			<solde>100.0</solde>
			<type>COURANT</type>
			<dateCreation>2024-01-01</dateCreation>
			<extra>ignored</extra>
		</compte>
		<compte>
			<solde>50</solde>
			<type>EPARGNE</type>
		</compte>
	</listeComptes>`

	list, err := UnmarshalAccountListXML([]byte(raw))
	require.NoError(t, err)
	require.Len(t, list.Comptes, 2)

	first := list.Comptes[0]
	require.NotNil(t, first.ID)
	assert.Equal(t, int64(1), *first.ID)
	assert.Equal(t, 100.0, first.Balance)
	assert.Equal(t, TypeCourant, first.Type)
	assert.Equal(t, "2024-01-01", first.CreationDate)

	second := list.Comptes[1]
	assert.Nil(t, second.ID)
	assert.Equal(t, 50.0, second.Balance)
	assert.Empty(t, second.CreationDate)
}

func TestUnmarshalAccountListXMLEmpty(t *testing.T) {
	list, err := UnmarshalAccountListXML([]byte(`<comptes></comptes>`))
	require.NoError(t, err)
	assert.Empty(t, list.Comptes)
}

func TestUnmarshalAccountXMLBadValues(t *testing.T) {
	_, err := UnmarshalAccountXML([]byte(`<compte><id>abc</id></compte>`))
	assert.Error(t, err)

	_, err = UnmarshalAccountXML([]byte(`<compte><solde>not-a-number</solde></compte>`))
	assert.Error(t, err)
}
