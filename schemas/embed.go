// Package schemas embeds the JSON Schemas describing stored documents.
package schemas

import (
	"embed"
	"fmt"
)

// AccountRecord is the file name of the stored account record schema.
const AccountRecord = "account_record.schema.json"

//go:embed *.schema.json
var files embed.FS

// Load returns the content of the named schema file.
func Load(name string) (string, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("schema %s not found: %w", name, err)
	}
	return string(data), nil
}
