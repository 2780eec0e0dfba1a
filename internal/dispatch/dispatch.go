// Package dispatch decodes a request document, routes it to its mode handler
// and encodes the single response document.
package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"marketfetch/internal/handler"
)

// ErrInvalidJSON means the input is not a JSON document. It is the only
// error that aborts the process; everything else becomes an ErrorResponse.
var ErrInvalidJSON = errors.New("input is not valid JSON")

type ErrorResponse struct {
	Error string `json:"error"`
}

type Dispatcher struct {
	Batch    *handler.Batch
	Intraday *handler.Intraday
	Summary  *handler.Summary
	Search   *handler.Search
	Log      zerolog.Logger
}

// Run reads one request from in and writes one JSON document to out. On
// ErrInvalidJSON nothing is written.
func (d *Dispatcher) Run(ctx context.Context, in io.Reader, out io.Writer, pretty bool) error {
	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read request: %w", err)
	}
	res, err := d.Dispatch(ctx, raw)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}

// Dispatch returns the response value for raw: a handler result or an
// ErrorResponse. The error is non-nil only for ErrInvalidJSON.
func (d *Dispatcher) Dispatch(ctx context.Context, raw []byte) (any, error) {
	raw = bytes.TrimSpace(raw)
	if !json.Valid(raw) {
		return nil, ErrInvalidJSON
	}
	if len(raw) == 0 || raw[0] != '{' {
		return ErrorResponse{Error: "request must be a JSON object"}, nil
	}

	var env struct {
		Type *string `json:"type"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return ErrorResponse{Error: "type must be a string"}, nil
	}
	typ := TypeBatch
	if env.Type != nil {
		typ = *env.Type
	}
	d.Log.Debug().Str("type", typ).Msg("dispatching request")

	res, err := d.route(ctx, typ, raw)
	if err != nil {
		var f *handler.Failure
		if !errors.As(err, &f) {
			d.Log.Warn().Err(err).Str("type", typ).Msg("request failed")
		}
		return ErrorResponse{Error: err.Error()}, nil
	}
	return res, nil
}

func (d *Dispatcher) route(ctx context.Context, typ string, raw []byte) (any, error) {
	switch typ {
	case TypeBatch:
		var req BatchRequest
		if err := decode(raw, &req); err != nil {
			return nil, err
		}
		return d.Batch.Run(ctx, req.Equities, req.Cryptos), nil

	case TypeIntraday:
		var req IntradayRequest
		if err := decode(raw, &req); err != nil {
			return nil, err
		}
		return d.Intraday.Run(ctx, req.Symbol, req.Interval, req.Lookback)

	case TypePriceSummary:
		var req PriceSummaryRequest
		if err := decode(raw, &req); err != nil {
			return nil, err
		}
		return d.Summary.Run(ctx, req.Symbol)

	case TypeSearch:
		var req SearchRequest
		if err := decode(raw, &req); err != nil {
			return nil, err
		}
		return d.Search.Run(req.Query, req.Limit), nil
	}
	return nil, &handler.Failure{Reason: fmt.Sprintf("Unknown request type: %s", typ)}
}

func decode(raw []byte, req any) error {
	if err := json.Unmarshal(raw, req); err != nil {
		var te *json.UnmarshalTypeError
		if errors.As(err, &te) && te.Field != "" {
			return fmt.Errorf("%s must be of type %s", te.Field, te.Type)
		}
		return fmt.Errorf("invalid request: %w", err)
	}
	trimSymbol(req)
	return prepare(req)
}

func trimSymbol(req any) {
	switch r := req.(type) {
	case *IntradayRequest:
		r.Symbol = strings.TrimSpace(r.Symbol)
	case *PriceSummaryRequest:
		r.Symbol = strings.TrimSpace(r.Symbol)
	}
}
