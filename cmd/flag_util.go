package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ec2"

	"github.com/barracuda-cloudgen-access/marketplace-template/awsconn"
	"github.com/barracuda-cloudgen-access/marketplace-template/pkg/config"
	"github.com/barracuda-cloudgen-access/marketplace-template/pkg/imagefinder"
)

type flag struct {
	name string
	val  string
}

func validateRequired(required ...flag) error {
	var missing []string
	for _, req := range required {
		if req.val == "" {
			missing = append(missing, strconv.Quote(req.name))
		}
	}
	if len(missing) != 0 {
		return fmt.Errorf("Missing required flag(s): %s", strings.Join(missing, ", "))
	}
	return nil
}

// imageSource returns the placeholder under --no-creds and an EC2 backed
// finder otherwise.
func imageSource(opts config.Options) (imagefinder.Source, error) {
	if opts.NoCreds {
		return imagefinder.Static(imagefinder.PlaceholderImageID), nil
	}
	if err := validateRequired(lookupFlags(opts)...); err != nil {
		return nil, err
	}

	sess, err := awsconn.NewSession(opts.Region, opts.AWSDebug)
	if err != nil {
		return nil, err
	}
	if err := checkCredentials(sess); err != nil {
		return nil, err
	}
	return imagefinder.New(ec2.New(sess), opts.Filter()), nil
}

func checkCredentials(sess *session.Session) error {
	if err := awsconn.CheckCredentials(sess); err != nil {
		return &imagefinder.CredentialError{Err: err}
	}
	return nil
}

func withTimeout(opts config.Options) (context.Context, context.CancelFunc) {
	if opts.AWSTimeout == 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), opts.AWSTimeout)
}
