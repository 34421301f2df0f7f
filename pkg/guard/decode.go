package guard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DecodeJSON reads one JSON document from r, converts it to the value model
// validators understand and checks it. Objects become map[string]any, arrays
// []any, and numbers int64 when integral, uint64 when they overflow int64,
// and float64 otherwise.
func (g *Guard) DecodeJSON(ctx context.Context, r io.Reader) (any, error) {
	body, err := g.readBody(ctx, r)
	if err != nil {
		return nil, err
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty body", ErrInvalidPayload)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	if g.cfg.StrictJSON {
		var extra any
		if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: unexpected data after JSON value", ErrInvalidPayload)
		}
	}

	value = normalizeJSON(value)
	if err := g.Check(ctx, value); err != nil {
		return nil, err
	}
	return value, nil
}

// DecodeYAML reads one YAML document from r and checks it. Mappings with
// string keys become map[string]any, other mappings map[any]any. Timestamps
// stay strings.
func (g *Guard) DecodeYAML(ctx context.Context, r io.Reader) (any, error) {
	body, err := g.readBody(ctx, r)
	if err != nil {
		return nil, err
	}

	var value any
	if err := yaml.NewDecoder(bytes.NewReader(body)).Decode(&value); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty body", ErrInvalidPayload)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	if err := g.Check(ctx, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (g *Guard) readBody(ctx context.Context, r io.Reader) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("%w: empty body", ErrInvalidPayload)
	}

	limit := g.cfg.maxBodyBytes()
	body, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%w: exceeds %d bytes", ErrPayloadTooLarge, limit)
	}
	return body, nil
}

func normalizeJSON(v any) any {
	switch x := v.(type) {
	case json.Number:
		return jsonNumber(x)
	case map[string]any:
		for k, item := range x {
			x[k] = normalizeJSON(item)
		}
		return x
	case []any:
		for i, item := range x {
			x[i] = normalizeJSON(item)
		}
		return x
	default:
		return v
	}
}

func jsonNumber(n json.Number) any {
	s := string(n)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return u
	}
	// Out of range values parse to an infinity.
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
