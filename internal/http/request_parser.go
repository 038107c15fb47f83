package http

import (
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/apratimrana/FInTracker/internal/core"
)

// bodyParser reads a request body once and exposes its fields whether the
// client sent a JSON object or form-encoded data.
type bodyParser struct {
	jsonData map[string]any
	formData url.Values
	err      error
}

func parseBody(r *http.Request) *bodyParser {
	p := &bodyParser{}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		p.err = err
		return p
	}

	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		p.formData = url.Values{}
		return p
	}

	if trimmed[0] == '{' {
		p.jsonData = make(map[string]any)
		p.err = json.Unmarshal(body, &p.jsonData)
		return p
	}

	p.formData, p.err = url.ParseQuery(trimmed)
	return p
}

// has reports whether the field was present in the body at all.
func (p *bodyParser) has(key string) bool {
	if p.jsonData != nil {
		_, ok := p.jsonData[key]
		return ok
	}
	return p.formData.Has(key)
}

// get returns the field as a trimmed string, "" when absent.
func (p *bodyParser) get(key string) string {
	if p.jsonData != nil {
		if v, ok := p.jsonData[key]; ok {
			return strings.TrimSpace(stringValue(v))
		}
		return ""
	}
	return strings.TrimSpace(p.formData.Get(key))
}

// getFloat parses the field as a number. The second return reports presence;
// a present but unparseable value (or a non-finite one) yields an error.
func (p *bodyParser) getFloat(key string) (float64, bool, error) {
	if !p.has(key) {
		return 0, false, nil
	}
	if p.jsonData != nil {
		if f, ok := p.jsonData[key].(float64); ok {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return 0, true, strconv.ErrSyntax
			}
			return f, true, nil
		}
	}
	f, err := strconv.ParseFloat(p.get(key), 64)
	if err != nil {
		return 0, true, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, true, strconv.ErrSyntax
	}
	return f, true, nil
}

func stringValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

// parseTransactionInput validates and assembles the writable transaction
// fields from a request body. A missing date defaults to today.
func parseTransactionInput(r *http.Request) (core.TransactionInput, error) {
	p := parseBody(r)
	if p.err != nil {
		return core.TransactionInput{}, &core.ValidationError{
			Message: "Invalid or missing data provided. Please check your inputs.",
			Details: "request body could not be parsed",
		}
	}

	amount, present, err := p.getFloat("amount")
	if !present || err != nil {
		return core.TransactionInput{}, &core.ValidationError{
			Message: "Invalid or missing data provided. Please check your inputs.",
			Details: "amount must be a number",
		}
	}

	in := core.TransactionInput{
		Type:          p.get("type"),
		Amount:        amount,
		Category:      p.get("category"),
		Description:   p.get("description"),
		Date:          p.get("date"),
		PaymentMethod: p.get("paymentMethod"),
		Notes:         p.get("notes"),
	}
	if in.Date == "" {
		in.Date = core.DateOf(time.Now())
	}

	if err := in.Validate(); err != nil {
		return core.TransactionInput{}, err
	}
	return in, nil
}

// parseMonthlyBudget reads the monthlyBudget field, defaulting to 0 when the
// field is absent.
func parseMonthlyBudget(r *http.Request) (float64, error) {
	p := parseBody(r)
	if p.err != nil {
		return 0, &core.ValidationError{Message: "Invalid budget value.", Details: "request body could not be parsed"}
	}
	budget, _, err := p.getFloat("monthlyBudget")
	if err != nil {
		return 0, &core.ValidationError{Message: "Invalid budget value.", Details: "monthlyBudget must be a number"}
	}
	return budget, nil
}

// parseCategoryBudget reads the category and budget fields. The category is
// required; the budget defaults to 0 when absent.
func parseCategoryBudget(r *http.Request) (category string, budget float64, err error) {
	p := parseBody(r)
	if p.err != nil {
		return "", 0, &core.ValidationError{Message: "Invalid data provided.", Details: "request body could not be parsed"}
	}

	category = p.get("category")
	if category == "" {
		return "", 0, &core.ValidationError{Message: "Category is required."}
	}

	budget, _, ferr := p.getFloat("budget")
	if ferr != nil {
		return "", 0, &core.ValidationError{Message: "Invalid data provided.", Details: "budget must be a number"}
	}
	return category, budget, nil
}
