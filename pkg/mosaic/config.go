package mosaic

import (
	"errors"
)

const (
	DefaultInput  = "dog.jpg"
	DefaultOutput = "out.jpg"
	DefaultRatio  = 25
)

// Config describes one pixelation run.
type Config struct {
	Input    string
	Output   string
	Ratio    int
	Progress bool
}

func DefaultConfig() *Config {
	return &Config{
		Input:  DefaultInput,
		Output: DefaultOutput,
		Ratio:  DefaultRatio,
	}
}

func (c *Config) Validate() error {
	if err := checkRatio("validate", c.Ratio); err != nil {
		return err
	}
	if c.Input == "" {
		return &Error{Kind: KindDecode, Op: "validate", Err: errors.New("empty input path")}
	}
	if c.Output == "" {
		return &Error{Kind: KindEncode, Op: "validate", Err: errors.New("empty output path")}
	}
	return nil
}
