package completion

// Options are the sampling parameters sent with a completion request.
// Zero fields are replaced with DefaultOptions values.
type Options struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int32   `json:"maxOutputTokens"`
	TopP            float32 `json:"topP"`
	TopK            int32   `json:"topK"`
}

func DefaultOptions() Options {
	return Options{
		Temperature:     0.9,
		MaxOutputTokens: 2048,
		TopP:            0.95,
		TopK:            40,
	}
}

// WithDefaults returns a copy with zero fields filled from DefaultOptions.
func (o Options) WithDefaults() Options {
	d := DefaultOptions()
	if o.Temperature == 0 {
		o.Temperature = d.Temperature
	}
	if o.MaxOutputTokens == 0 {
		o.MaxOutputTokens = d.MaxOutputTokens
	}
	if o.TopP == 0 {
		o.TopP = d.TopP
	}
	if o.TopK == 0 {
		o.TopK = d.TopK
	}
	return o
}
