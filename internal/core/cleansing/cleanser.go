package cleansing

import (
	"context"
	"fmt"

	"github.com/agenthands/mdm/internal/core/common"
	"github.com/agenthands/mdm/internal/core/model"
	"github.com/agenthands/mdm/internal/core/prompt"
	"github.com/agenthands/mdm/internal/llm"
)

const flowName = "cleansing"

const DefaultPrompt = `You are a master data management expert specializing in cleansing and standardizing data for ERP systems.

You will receive raw data, and your task is to cleanse and standardize it according to best practices and any specific rules provided.

Input Data Type: {{ .DataType }}
Raw Data: {{ .RawData }}

Specific Rules: {{ .Rules | trim | default "Use best practices for cleansing and standardization." }}

You will also assess the quality of the cleansed data and provide a data quality score (0-100).
Finally, provide a summary of the improvements made to the data during cleansing.

Ensure that the output is well-formatted and easy to understand.
`

// ResultSchema is the contract the model output must satisfy.
var ResultSchema = common.MustSchema(`{
	"type": "object",
	"properties": {
		"cleansedData": {
			"type": "string",
			"description": "The cleansed and standardized material or service master data."
		},
		"dataQualityScore": {
			"type": "number",
			"minimum": 0,
			"maximum": 100,
			"description": "A score indicating the quality of the cleansed data (0-100)."
		},
		"improvements": {
			"type": "string",
			"description": "A summary of improvements made to the data during cleansing."
		}
	},
	"required": ["cleansedData", "dataQualityScore"]
}`)

// sampleRequest is rendered at construction to reject overrides that name
// fields the request does not have.
var sampleRequest = model.CleansingRequest{RawData: "sample", DataType: model.DataTypeMaterial, Rules: "sample"}

type Cleanser struct {
	LLM    llm.LLMClient
	Prompt *prompt.Template
}

// NewCleanser uses DefaultPrompt when promptText is empty.
func NewCleanser(llmClient llm.LLMClient, promptText string) (*Cleanser, error) {
	tmpl, err := prompt.New("cleanse_and_standardize", promptText, DefaultPrompt)
	if err != nil {
		return nil, err
	}
	if _, err := tmpl.Render(sampleRequest); err != nil {
		return nil, err
	}
	return &Cleanser{
		LLM:    llmClient,
		Prompt: tmpl,
	}, nil
}

// Cleanse normalizes one master-data record. The score is the model's own
// assessment; only its range is checked.
func (c *Cleanser) Cleanse(ctx context.Context, req model.CleansingRequest) (model.CleansingResult, error) {
	var zero model.CleansingResult

	if err := common.ValidateStruct(req); err != nil {
		return zero, err
	}

	text, err := c.Prompt.Render(req)
	if err != nil {
		return zero, err
	}

	response, err := c.LLM.Generate(ctx, llm.Request{
		Name:   c.Prompt.Name(),
		Prompt: text,
		Schema: ResultSchema.Raw(),
	})
	if err != nil {
		return zero, &common.ModelError{Flow: flowName, Err: fmt.Errorf("failed to generate cleansing result: %w", err)}
	}
	if common.IsEmptyResult(response) {
		return zero, &common.EmptyResultError{Flow: flowName}
	}

	result, err := common.ParseJSON[model.CleansingResult](response, ResultSchema)
	if err != nil {
		return zero, &common.ModelError{Flow: flowName, Err: err}
	}

	return result, nil
}
