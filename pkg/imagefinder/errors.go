package imagefinder

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/pkg/errors"
)

// NotFoundError is returned when no image matches the filter.
type NotFoundError struct {
	Filter Filter
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no image named %q owned by %q matched (hvm, x86_64*, ebs)", e.Filter.NamePattern, e.Filter.Owner)
}

// CredentialError is returned when the catalog refuses the request because
// credentials are missing, expired or lack permission.
type CredentialError struct {
	Err error
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("unable to query the image catalog with the current AWS credentials (retry with --no-creds to use %s): %v", PlaceholderImageID, e.Err)
}

func (e *CredentialError) Cause() error {
	return e.Err
}

var credentialErrorCodes = map[string]bool{
	"NoCredentialProviders":       true,
	"AuthFailure":                 true,
	"UnauthorizedOperation":       true,
	"InvalidClientTokenId":        true,
	"ExpiredToken":                true,
	"RequestExpired":              true,
	"SignatureDoesNotMatch":       true,
	"MissingAuthenticationToken":  true,
	"SharedCredsLoad":             true,
	"AssumeRoleTokenNotAvailable": true,
}

// IsCredentialError reports whether err is an AWS error caused by missing
// or invalid credentials.
func IsCredentialError(err error) bool {
	if aerr, ok := errors.Cause(err).(awserr.Error); ok {
		return credentialErrorCodes[aerr.Code()]
	}
	return false
}

func classify(err error) error {
	if IsCredentialError(err) {
		return &CredentialError{Err: err}
	}
	return errors.Wrap(err, "failed to describe images")
}
