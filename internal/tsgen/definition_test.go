package tsgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullIndexJSON = `{
  "name": "azure-indexer",
  "fields": [
    {
      "name": "PartitionKey",
      "type": "Edm.String",
      "searchable": true,
      "filterable": true,
      "retrievable": true,
      "sortable": true,
      "facetable": false,
      "key": false,
      "indexAnalyzer": null,
      "searchAnalyzer": null,
      "analyzer": null,
      "synonymMaps": []
    },
    {
      "name": "Location",
      "type": "Edm.GeographyPoint"
    }
  ],
  "scoringProfiles": [],
  "suggesters": []
}`

func TestParse_IgnoresExtraKeys(t *testing.T) {
	def, err := Parse(strings.NewReader(fullIndexJSON))
	require.NoError(t, err)

	assert.Equal(t, "azure-indexer", def.Name)
	assert.Equal(t, []Field{
		{Name: "PartitionKey", SourceType: "Edm.String"},
		{Name: "Location", SourceType: "Edm.GeographyPoint"},
	}, def.Fields)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		msg     string
	}{
		{
			name:    "not json",
			input:   `name: azure`,
			wantErr: ErrInvalidDefinition,
		},
		{
			name:    "wrong field shape",
			input:   `{"name":"x","fields":{"name":"a"}}`,
			wantErr: ErrInvalidDefinition,
		},
		{
			name:    "missing name",
			input:   `{"fields":[]}`,
			wantErr: ErrInvalidDefinition,
			msg:     `missing key "name"`,
		},
		{
			name:    "empty name",
			input:   `{"name":"","fields":[]}`,
			wantErr: ErrInvalidDefinition,
			msg:     "name is empty",
		},
		{
			name:    "missing fields",
			input:   `{"name":"x"}`,
			wantErr: ErrInvalidDefinition,
			msg:     `missing key "fields"`,
		},
		{
			name:    "null fields",
			input:   `{"name":"x","fields":null}`,
			wantErr: ErrInvalidDefinition,
			msg:     `missing key "fields"`,
		},
		{
			name:    "field without type",
			input:   `{"name":"x","fields":[{"name":"a"}]}`,
			wantErr: ErrInvalidDefinition,
			msg:     `field "a": missing key "type"`,
		},
		{
			name:    "field without name",
			input:   `{"name":"x","fields":[{"type":"Edm.String"}]}`,
			wantErr: ErrInvalidDefinition,
			msg:     `missing key "name"`,
		},
		{
			name:    "type not a string",
			input:   `{"name":"x","fields":[{"name":"a","type":7}]}`,
			wantErr: ErrInvalidDefinition,
			msg:     "type:",
		},
		{
			name:    "keys matched case-sensitively",
			input:   `{"NAME":"x","FIELDS":[{"NAME":"a","TYPE":"Edm.Int32"}]}`,
			wantErr: ErrInvalidDefinition,
			msg:     `missing key "name"`,
		},
		{
			name:    "trailing value",
			input:   `{"name":"x","fields":[{"name":"a","type":"Edm.String"}]} {"name":"y"}`,
			wantErr: ErrInvalidDefinition,
			msg:     "trailing data",
		},
		{
			name:    "trailing garbage",
			input:   `{"name":"x","fields":[]}]`,
			wantErr: ErrInvalidDefinition,
			msg:     "trailing data",
		},
		{
			name:    "unclosed collection",
			input:   `{"name":"x","fields":[{"name":"Tags","type":"Collection(Edm.String"}]}`,
			wantErr: ErrMalformedCollection,
			msg:     `field "Tags"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBytes([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestParse_EmptyFieldList(t *testing.T) {
	def, err := ParseBytes([]byte("{\"name\":\"empty\",\"fields\":[]}\n\n"))
	require.NoError(t, err)
	assert.Equal(t, "empty", def.Name)
	assert.Empty(t, def.Fields)
}
