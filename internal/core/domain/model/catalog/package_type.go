package catalog

import (
	"fmt"

	"instagrow/internal/pkg/errs"
)

// PackageType classifies what a catalog package delivers.
type PackageType int

const (
	// UnknownType represents an invalid or undefined package type.
	UnknownType PackageType = iota

	// Followers delivers profile followers.
	Followers

	// Likes delivers post likes.
	Likes

	// Views delivers video views.
	Views

	// Comments delivers post comments.
	Comments
)

func getPackageTypeStrings() map[PackageType]string {
	return map[PackageType]string{
		UnknownType: "unknown",
		Followers:   "followers",
		Likes:       "likes",
		Views:       "views",
		Comments:    "comments",
	}
}

func getValidPackageTypeStrings() map[PackageType]string {
	//nolint:exhaustive // UnknownType is intentionally excluded as it's invalid
	return map[PackageType]string{
		Followers: "followers",
		Likes:     "likes",
		Views:     "views",
		Comments:  "comments",
	}
}

// PackageTypeFromString parses a wire label such as "followers".
func PackageTypeFromString(s string) (PackageType, error) {
	for packageType, label := range getValidPackageTypeStrings() {
		if label == s {
			return packageType, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause(
		"packageType", fmt.Errorf("%q is not a valid package type", s))
}

// Validate checks if the PackageType is one of the valid classifications.
func (p PackageType) Validate() error {
	if _, ok := getValidPackageTypeStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"packageType", fmt.Errorf("%d is not a valid package type", p))
	}
	return nil
}

// String returns the lower-case wire label, or "unknown" for invalid values.
func (p PackageType) String() string {
	if str, ok := getPackageTypeStrings()[p]; ok {
		return str
	}
	return "unknown"
}
