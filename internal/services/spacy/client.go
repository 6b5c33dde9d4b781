// Package spacy shells out to an external annotation helper (a small spaCy
// wrapper) speaking JSON over stdin/stdout. It implements the same pipeline
// contract as the built-in annotator and is selected via config when higher
// tagging fidelity is needed.
package spacy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"silbe/internal/annotate"
	"silbe/internal/services"
)

// Config describes how to invoke the helper.
type Config struct {
	// Command is the helper executable.
	Command string
	// Model is the spaCy model name passed via --model.
	Model string
	// Timeout bounds a single helper invocation.
	Timeout time.Duration
}

// Client invokes the helper once per call; the helper loads the model and
// exits, keeping the Go side free of NLP runtime state.
type Client struct {
	cfg    Config
	runner func(ctx context.Context, args []string, stdin []byte) ([]byte, error)
}

var _ annotate.Pipeline = (*Client)(nil)

// NewClient builds a client for the configured helper command.
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &Client{cfg: cfg}
}

// WithRunner sets a custom command runner (for testing).
func (c *Client) WithRunner(runner func(ctx context.Context, args []string, stdin []byte) ([]byte, error)) {
	c.runner = runner
}

type request struct {
	Text string `json:"text"`
}

type segmentResponse struct {
	Sentences []string `json:"sentences"`
}

type tokenPayload struct {
	Text      string   `json:"text"`
	POS       string   `json:"pos"`
	Syllables []string `json:"syllables"`
}

type annotateResponse struct {
	Tokens []tokenPayload `json:"tokens"`
}

// Segment asks the helper to split text into sentences.
func (c *Client) Segment(ctx context.Context, text string) ([]string, error) {
	output, err := c.invoke(ctx, "segment", text)
	if err != nil {
		return nil, err
	}
	var resp segmentResponse
	if err := json.Unmarshal(output, &resp); err != nil {
		return nil, services.Wrap(services.ErrAnnotation, "spacy", "segment", "decode response", err)
	}
	return resp.Sentences, nil
}

// Annotate asks the helper to tag and syllabize a single sentence.
func (c *Client) Annotate(ctx context.Context, sentence string) (annotate.Sentence, error) {
	output, err := c.invoke(ctx, "annotate", sentence)
	if err != nil {
		return annotate.Sentence{}, err
	}
	var resp annotateResponse
	if err := json.Unmarshal(output, &resp); err != nil {
		return annotate.Sentence{}, services.Wrap(services.ErrAnnotation, "spacy", "annotate", "decode response", err)
	}

	tokens := make([]annotate.Token, 0, len(resp.Tokens))
	for _, tok := range resp.Tokens {
		tokens = append(tokens, annotate.Token{
			Text:      tok.Text,
			POS:       tok.POS,
			Syllables: tok.Syllables,
		})
	}
	return annotate.Sentence{Text: sentence, Tokens: tokens}, nil
}

func (c *Client) invoke(ctx context.Context, op, text string) ([]byte, error) {
	payload, err := json.Marshal(request{Text: text})
	if err != nil {
		return nil, services.Wrap(services.ErrAnnotation, "spacy", op, "encode request", err)
	}

	args := []string{op}
	if c.cfg.Model != "" {
		args = append(args, "--model", c.cfg.Model)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	if c.runner != nil {
		output, err := c.runner(ctx, args, payload)
		if err != nil {
			return nil, services.Wrap(services.ErrAnnotation, "spacy", op, "", err)
		}
		return output, nil
	}

	cmd := exec.CommandContext(ctx, c.cfg.Command, args...)
	cmd.Stdin = bytes.NewReader(payload)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return nil, services.Wrap(services.ErrAnnotation, "spacy", op,
			fmt.Sprintf("%s: %s", c.cfg.Command, detail), err)
	}
	return stdout.Bytes(), nil
}
