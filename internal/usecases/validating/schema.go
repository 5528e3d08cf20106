package validating

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed bill.schema.json
var billSchema []byte

const billSchemaURL = "bill.schema.json"

func compileBillSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(billSchemaURL, bytes.NewReader(billSchema)); err != nil {
		return nil, fmt.Errorf("erro ao adicionar schema da conta: %w", err)
	}

	schema, err := compiler.Compile(billSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao compilar schema da conta: %w", err)
	}

	return schema, nil
}

// validateAgainstSchema confere o formato do payload antes da coerção dos campos
func validateAgainstSchema(schema *jsonschema.Schema, payload []byte) error {
	var doc any
	if err := json.Unmarshal(payload, &doc); err != nil {
		return &PayloadError{Err: ErrInvalidPayload, Details: err.Error()}
	}

	if err := schema.Validate(doc); err != nil {
		return &PayloadError{Err: ErrInvalidPayload, Details: err.Error()}
	}

	return nil
}
