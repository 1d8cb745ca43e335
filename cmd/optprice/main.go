package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/meenmo/qfin/option"
)

type priceInput struct {
	TaskID string `json:"task_id,omitempty"`
	// Kind selects the pricer: "eq", "fx", "black76" or "margrabe".
	Kind string `json:"kind"`

	// eq / fx
	Spot   float64 `json:"spot,omitempty"`
	Strike float64 `json:"strike,omitempty"`
	Expiry float64 `json:"expiry"`
	Sigma  float64 `json:"sigma"`
	Yield  float64 `json:"yield,omitempty"`
	Rate   float64 `json:"rate,omitempty"`

	// fx
	RateForeign  float64 `json:"rate_foreign,omitempty"`
	RateDomestic float64 `json:"rate_domestic,omitempty"`

	// black76
	Forward float64 `json:"forward,omitempty"`

	// margrabe
	Spot2  float64 `json:"spot2,omitempty"`
	Sigma2 float64 `json:"sigma2,omitempty"`
	Rho    float64 `json:"rho,omitempty"`
	Yield2 float64 `json:"yield2,omitempty"`

	// Scale multiplies prices and sensitivities; 0 means 1.
	Scale float64 `json:"scale,omitempty"`
}

type legOutput struct {
	Price float64 `json:"price"`
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
}

type priceOutput struct {
	TaskID      string     `json:"task_id,omitempty"`
	Kind        string     `json:"kind,omitempty"`
	Call        *legOutput `json:"call,omitempty"`
	Put         *legOutput `json:"put,omitempty"`
	DigitalCall *legOutput `json:"digital_call,omitempty"`
	DigitalPut  *legOutput `json:"digital_put,omitempty"`
	D1          float64    `json:"d1"`
	D2          float64    `json:"d2"`
	Nd1         float64    `json:"n_d1"`
	Nd2         float64    `json:"n_d2"`
	Sigma       float64    `json:"sigma"`
	Error       string     `json:"error,omitempty"`
}

func main() {
	inputPath := flag.String("input", "", "JSON input path (reads stdin if omitted)")
	help := flag.Bool("h", false, "Show help")
	flag.BoolVar(help, "help", false, "Show help")
	flag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "Usage: optprice -input <path>")
		fmt.Fprintln(os.Stderr, "Price options (eq/fx/black76/margrabe) with greeks from JSON input.")
		return
	}

	path := strings.TrimSpace(*inputPath)
	if path == "" {
		if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			fmt.Fprintln(os.Stderr, "Usage: optprice -input <path>")
			os.Exit(2)
		}
	}

	raw, err := readInput(path)
	if err != nil {
		exitError(fmt.Sprintf("read input: %v", err))
	}

	inputs, isArray, err := parseInputs(raw)
	if err != nil {
		exitError(fmt.Sprintf("parse JSON: %v", err))
	}

	hadError := false
	outputs := make([]priceOutput, 0, len(inputs))
	for _, in := range inputs {
		out, err := process(in)
		if err != nil {
			hadError = true
			outputs = append(outputs, priceOutput{TaskID: in.TaskID, Kind: in.Kind, Error: err.Error()})
			continue
		}
		outputs = append(outputs, *out)
	}

	if isArray {
		b, _ := json.Marshal(outputs)
		fmt.Println(string(b))
	} else {
		b, _ := json.Marshal(outputs[0])
		fmt.Println(string(b))
	}

	if hadError {
		os.Exit(1)
	}
}

func process(in priceInput) (*priceOutput, error) {
	scale := in.Scale
	if scale == 0 {
		scale = 1
	}

	switch strings.ToLower(in.Kind) {
	case "eq":
		q, err := option.BlackScholes(in.Spot, in.Strike, in.Expiry, in.Sigma, in.Yield, in.Rate, scale)
		if err != nil {
			return nil, err
		}
		out := quoteOutput(in, q.Quote)
		out.DigitalCall = leg(q.DigitalCall)
		out.DigitalPut = leg(q.DigitalPut)
		return out, nil
	case "fx":
		q, err := option.FXBlackScholes(in.Spot, in.Strike, in.Expiry, in.Sigma, in.RateForeign, in.RateDomestic, scale)
		if err != nil {
			return nil, err
		}
		return quoteOutput(in, q), nil
	case "black76":
		q, err := option.Black76(in.Forward, in.Strike, in.Expiry, in.Sigma, in.Rate, scale)
		if err != nil {
			return nil, err
		}
		return quoteOutput(in, q), nil
	case "margrabe":
		q, err := option.Margrabes(in.Spot, in.Spot2, in.Expiry, in.Sigma, in.Sigma2, in.Rho, in.Yield, in.Yield2, scale)
		if err != nil {
			return nil, err
		}
		return quoteOutput(in, q), nil
	default:
		return nil, fmt.Errorf("unknown kind %q (want eq, fx, black76 or margrabe)", in.Kind)
	}
}

func quoteOutput(in priceInput, q option.Quote) *priceOutput {
	return &priceOutput{
		TaskID: in.TaskID,
		Kind:   in.Kind,
		Call:   leg(q.Call),
		Put:    leg(q.Put),
		D1:     q.D1,
		D2:     q.D2,
		Nd1:    q.Nd1,
		Nd2:    q.Nd2,
		Sigma:  q.Sigma,
	}
}

// leg rounds money fields to 10 decimal places for stable JSON output.
func leg(r option.Result) *legOutput {
	return &legOutput{
		Price: roundMoney(r.Price),
		Delta: roundMoney(r.Delta),
		Gamma: roundMoney(r.Gamma),
	}
}

func roundMoney(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(10).Float64()
	return f
}

func readInput(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(os.Stdin)
}

func parseInputs(raw []byte) ([]priceInput, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("empty input")
	}
	if trimmed[0] == '[' {
		var inputs []priceInput
		if err := json.Unmarshal(trimmed, &inputs); err != nil {
			return nil, true, err
		}
		if len(inputs) == 0 {
			return nil, true, fmt.Errorf("empty input array")
		}
		return inputs, true, nil
	}
	var input priceInput
	if err := json.Unmarshal(trimmed, &input); err != nil {
		return nil, false, err
	}
	return []priceInput{input}, false, nil
}

func exitError(msg string) {
	b, _ := json.Marshal(priceOutput{Error: msg})
	fmt.Println(string(b))
	os.Exit(1)
}
