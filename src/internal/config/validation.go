package config

import (
	"fmt"
	"net"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hostsmith/hostsmith/src/internal/utils"
)

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "required_if":
		return "field is required"
	case "min":
		return fmt.Sprintf("must be >= %s", e.Param())
	case "max":
		return fmt.Sprintf("must be <= %s", e.Param())
	case "target_ip":
		return "must be a valid IP address"
	case "exclusion_domain":
		return "must be a bare domain (no www. prefix, no http(s):// scheme)"
	case "ip_or_empty":
		return "must be a valid IP address (IPv6 must be in square brackets, e.g., [::1]) or empty"
	case "hostport_or_empty":
		return "must be in format 'host:port' or empty"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// ValidationError represents a single validation error with context
type ValidationError struct {
	ItemName  string // For repeated items: the name of the item (e.g., an extension name)
	FieldPath string // Dot-notation field path (e.g., "general.target_ip", "dns.listen_port")
	Message   string // Human-readable error message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		if err.ItemName != "" {
			sb.WriteString(fmt.Sprintf("  %d. [%s] %s: %s\n", i+1, err.ItemName, err.FieldPath, err.Message))
		} else {
			sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
		}
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validators
	if err := validate.RegisterValidation("target_ip", validateTargetIP); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("exclusion_domain", validateExclusionDomain); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("ip_or_empty", validateIPOrEmpty); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("hostport_or_empty", validateHostPortOrEmpty); err != nil {
		panic(err)
	}

	// Register function to get field name from "toml" tag
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Custom validator: the sinkhole target IP. The merge core substitutes the
// value verbatim, so malformed IPs are caught here at the config boundary.
func validateTargetIP(fl validator.FieldLevel) bool {
	return net.ParseIP(fl.Field().String()) != nil
}

// Custom validator: exclusion domains must be bare domains
func validateExclusionDomain(fl validator.FieldLevel) bool {
	return utils.IsValidExclusionDomain(fl.Field().String())
}

// Custom validator: IP address or empty (IPv6 must be in square brackets)
func validateIPOrEmpty(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return validateIPAddress(value)
}

// validateIPAddress validates IP address with IPv6 in square brackets
func validateIPAddress(value string) bool {
	// Check if it's in square brackets (IPv6 format)
	if strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]") {
		addr := strings.Trim(value, "[]")
		// Allow [::] for dual-stack
		if addr == "::" {
			return true
		}
		// Must be valid IPv6
		ip := net.ParseIP(addr)
		return ip != nil && ip.To4() == nil
	}

	// Without brackets, must be IPv4
	ip := net.ParseIP(value)
	return ip != nil && ip.To4() != nil
}

// Custom validator: host:port format or empty
func validateHostPortOrEmpty(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, _, err := net.SplitHostPort(value)
	return err == nil
}
