package awsconn

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials/stscreds"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/pkg/errors"
)

// NewSession creates an AWS session for region. Shared config files are
// honoured so that profiles with source_profile and MFA work.
func NewSession(region string, debug bool) (*session.Session, error) {
	awsConfig := aws.NewConfig().
		WithRegion(region).
		WithCredentialsChainVerboseErrors(true)

	if debug {
		awsConfig = awsConfig.WithLogLevel(aws.LogDebug)
	}

	sess, err := session.NewSessionWithOptions(session.Options{
		Config:                  *awsConfig,
		SharedConfigState:       session.SharedConfigEnable,
		AssumeRoleTokenProvider: stscreds.StdinTokenProvider,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to establish aws session")
	}
	return sess, nil
}

// CheckCredentials resolves the credential chain of sess without calling
// any service, so a missing profile is reported before the first request.
func CheckCredentials(sess *session.Session) error {
	if sess.Config.Credentials == nil {
		return errors.New("no credential provider configured")
	}
	if _, err := sess.Config.Credentials.Get(); err != nil {
		return err
	}
	return nil
}
