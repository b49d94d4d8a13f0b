package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFFilename(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"single word", "Ada", "Ada_Resume.pdf", false},
		{"two words", "John Doe", "John_Doe_Resume.pdf", false},
		{"whitespace runs collapse", "Mary  Ann\tSmith", "Mary_Ann_Smith_Resume.pdf", false},
		{"trimmed", "  Jane Roe \n", "Jane_Roe_Resume.pdf", false},
		{"empty", "", "", true},
		{"blank", " \t ", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PDFFilename(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrNameRequired)
				assert.Equal(t, MsgNameRequired, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
