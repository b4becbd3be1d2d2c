// Package imagefinder looks up the newest machine image matching a name
// filter in the EC2 image catalog.
package imagefinder

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/ec2"

	"github.com/barracuda-cloudgen-access/marketplace-template/logger"
)

// PlaceholderImageID stands in for a real image when running without
// AWS credentials.
const PlaceholderImageID = "ami-placeholder"

const (
	DefaultNamePattern = "amzn2-ami-hvm*"
	DefaultOwner       = "amazon"
	DefaultRegion      = "us-east-1"
)

type EC2Interrogator interface {
	DescribeImagesWithContext(aws.Context, *ec2.DescribeImagesInput, ...request.Option) (*ec2.DescribeImagesOutput, error)
}

// Source yields the image identifier to bake into the template.
type Source interface {
	ImageID(ctx context.Context) (string, error)
}

// Static is a Source returning a fixed identifier.
type Static string

func (s Static) ImageID(context.Context) (string, error) {
	return string(s), nil
}

// Filter narrows the catalog query. Virtualization type, architecture and
// root device type are fixed to hvm, x86_64* and ebs.
type Filter struct {
	NamePattern string
	Owner       string
}

func (f Filter) input() *ec2.DescribeImagesInput {
	return &ec2.DescribeImagesInput{
		Filters: []*ec2.Filter{
			{Name: aws.String("name"), Values: aws.StringSlice([]string{f.NamePattern})},
			{Name: aws.String("virtualization-type"), Values: aws.StringSlice([]string{"hvm"})},
			{Name: aws.String("architecture"), Values: aws.StringSlice([]string{"x86_64*"})},
			{Name: aws.String("root-device-type"), Values: aws.StringSlice([]string{"ebs"})},
		},
		Owners: aws.StringSlice([]string{f.Owner}),
	}
}

// Finder is a Source backed by the EC2 DescribeImages API.
type Finder struct {
	EC2    EC2Interrogator
	Filter Filter
}

func New(svc EC2Interrogator, filter Filter) *Finder {
	return &Finder{EC2: svc, Filter: filter}
}

// ImageID returns the identifier of the most recently created image
// matching the filter.
func (f *Finder) ImageID(ctx context.Context) (string, error) {
	logger.Debugf("Describing images named %q owned by %q", f.Filter.NamePattern, f.Filter.Owner)

	output, err := f.EC2.DescribeImagesWithContext(ctx, f.Filter.input())
	if err != nil {
		return "", classify(err)
	}

	image := Newest(output.Images)
	if image == nil {
		return "", &NotFoundError{Filter: f.Filter}
	}

	logger.Debugf("Found %d images, newest is %s created at %s", len(output.Images), aws.StringValue(image.ImageId), aws.StringValue(image.CreationDate))
	return aws.StringValue(image.ImageId), nil
}

// Newest returns the image with the greatest creation date, or nil when
// images is empty. Dates are compared as RFC3339 timestamps and as plain
// strings when they do not parse.
func Newest(images []*ec2.Image) *ec2.Image {
	var newest *ec2.Image
	for _, image := range images {
		if image == nil {
			continue
		}
		if newest == nil || createdAfter(image, newest) {
			newest = image
		}
	}
	return newest
}

func createdAfter(a, b *ec2.Image) bool {
	da, db := aws.StringValue(a.CreationDate), aws.StringValue(b.CreationDate)
	ta, errA := time.Parse(time.RFC3339, da)
	tb, errB := time.Parse(time.RFC3339, db)
	if errA == nil && errB == nil {
		return ta.After(tb)
	}
	return da > db
}
