package backend

import jsoniter "github.com/json-iterator/go"

// JSON is the codec used for service payloads and cell text. Numbers decode
// as json.Number so integer literals survive untouched.
var JSON = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()
