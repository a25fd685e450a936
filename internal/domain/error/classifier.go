package error

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"
)

// Kind is the backend independent category of a data access failure
type Kind int

const (
	KindUnknown Kind = iota
	KindDuplicateKey
	KindInvalidStatement
	KindUnavailable
	KindNotFound
	KindBusinessRuleViolation
)

var kindNames = map[Kind]string{
	KindUnknown:               "Unknown",
	KindDuplicateKey:          "DuplicateKey",
	KindInvalidStatement:      "InvalidStatement",
	KindUnavailable:           "Unavailable",
	KindNotFound:              "NotFound",
	KindBusinessRuleViolation: "BusinessRuleViolation",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// ClassifiedError is a store failure mapped to a Kind. The raw error is kept
// and reachable through Unwrap.
type ClassifiedError struct {
	kind       Kind
	operation  string
	statement  string
	vendorCode VendorCode
	raw        error
}

func (e *ClassifiedError) Kind() Kind             { return e.kind }
func (e *ClassifiedError) Operation() string      { return e.operation }
func (e *ClassifiedError) Statement() string      { return e.statement }
func (e *ClassifiedError) VendorCode() VendorCode { return e.vendorCode }
func (e *ClassifiedError) Raw() error             { return e.raw }

// Error implements the error interface for ClassifiedError
func (e *ClassifiedError) Error() string {
	if e.raw == nil {
		return fmt.Sprintf("%s during %s", e.kind, e.operation)
	}
	return fmt.Sprintf("%s during %s: %v", e.kind, e.operation, e.raw)
}

// Unwrap returns the raw store error
func (e *ClassifiedError) Unwrap() error {
	return e.raw
}

// LogFields returns a map of fields for structured logging
func (e *ClassifiedError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "classified",
		"kind":       e.kind.String(),
		"operation":  e.operation,
		"statement":  e.statement,
		"error_code": ErrorCode(e),
	}
	if e.vendorCode.Vendor != "" {
		fields["vendor"] = e.vendorCode.Vendor
		fields["vendor_code"] = e.vendorCode.String()
	}
	if e.raw != nil {
		fields["error"] = e.raw.Error()
	}
	return fields
}

// KindOf reports the kind carried anywhere in err's chain
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified.kind
	}
	var rule *BusinessRuleError
	if errors.As(err, &rule) {
		return KindBusinessRuleViolation
	}
	return KindUnknown
}

// VendorCode is the store specific error identity. Stores using SQLSTATE fill
// State, stores using numeric codes fill Number.
type VendorCode struct {
	Vendor string
	Number int
	State  string
}

func (c VendorCode) String() string {
	if c.State != "" {
		return c.State
	}
	return fmt.Sprintf("%d", c.Number)
}

// CodeExtractor pulls the vendor code out of a driver error
type CodeExtractor func(err error) (VendorCode, bool)

// CodeRule maps a range of vendor codes to a Kind. A rule with StatePrefix set
// matches SQLSTATE codes by prefix, otherwise Number must fall in [From, To].
type CodeRule struct {
	Vendor      string
	StatePrefix string
	From        int
	To          int
	Kind        Kind
}

func (r CodeRule) matches(code VendorCode) bool {
	if r.Vendor != code.Vendor {
		return false
	}
	if r.StatePrefix != "" {
		return code.State != "" && strings.HasPrefix(code.State, r.StatePrefix)
	}
	return code.Number >= r.From && code.Number <= r.To
}

// Classifier translates raw store errors into ClassifiedErrors using an
// ordered rule table; the first matching rule wins.
type Classifier struct {
	rules      []CodeRule
	extractors []CodeExtractor
}

// NewClassifier creates a classifier over the given rules and extractors
func NewClassifier(rules []CodeRule, extractors ...CodeExtractor) *Classifier {
	return &Classifier{
		rules:      append([]CodeRule(nil), rules...),
		extractors: append([]CodeExtractor(nil), extractors...),
	}
}

// Classify maps raw to a ClassifiedError. Errors that are already classified
// are returned unchanged.
func (c *Classifier) Classify(raw error, operation, statement string) *ClassifiedError {
	if raw == nil {
		return nil
	}

	var classified *ClassifiedError
	if errors.As(raw, &classified) {
		return classified
	}

	result := &ClassifiedError{
		kind:      KindUnknown,
		operation: operation,
		statement: statement,
		raw:       raw,
	}

	if code, ok := c.vendorCode(raw); ok {
		result.vendorCode = code
		for _, rule := range c.rules {
			if rule.matches(code) {
				result.kind = rule.Kind
				return result
			}
		}
	}

	if isConnectivityFailure(raw) {
		result.kind = KindUnavailable
	}

	return result
}

// NotFound synthesizes a NotFound error for a point lookup that matched no row
func (c *Classifier) NotFound(operation, statement, key string) *ClassifiedError {
	return &ClassifiedError{
		kind:      KindNotFound,
		operation: operation,
		statement: statement,
		raw:       fmt.Errorf("no row for key %q", key),
	}
}

func (c *Classifier) vendorCode(err error) (VendorCode, bool) {
	for _, extract := range c.extractors {
		if code, ok := extract(err); ok {
			return code, true
		}
	}
	return VendorCode{}, false
}

func isConnectivityFailure(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
