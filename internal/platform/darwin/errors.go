package darwin

import "github.com/mj1618/ax-inspector/internal/ax"

// axErrorNoValue is kAXErrorNoValue. The service reports it when a query
// succeeds without producing a value.
const axErrorNoValue = -25212

// axErrorReasons names the codes from <HIServices/AXError.h>.
var axErrorReasons = map[int]string{
	-25200: "failure",
	-25201: "illegal argument",
	-25202: "invalid element",
	-25203: "invalid observer",
	-25204: "cannot complete",
	-25205: "attribute unsupported",
	-25206: "action unsupported",
	-25207: "notification unsupported",
	-25208: "not implemented",
	-25209: "notification already registered",
	-25210: "notification not registered",
	-25211: "api disabled",
	-25212: "no value",
	-25213: "parameterized attribute unsupported",
	-25214: "not enough precision",
}

// queryError converts an AXError code into an *ax.QueryError.
// attribute is empty for attribute-name queries.
func queryError(attribute string, code int) error {
	reason, ok := axErrorReasons[code]
	if !ok {
		reason = "unknown error"
	}
	return &ax.QueryError{Attribute: attribute, Code: code, Reason: reason}
}
