package video

import (
	"fmt"
	"slices"
	"strings"

	"catalog/domain/shared"
)

// Rating 分级值对象
type Rating string

const (
	RatingFree Rating = "L"
	Rating10   Rating = "10"
	Rating12   Rating = "12"
	Rating14   Rating = "14"
	Rating16   Rating = "16"
	Rating18   Rating = "18"
)

var ratings = []Rating{RatingFree, Rating10, Rating12, Rating14, Rating16, Rating18}

type InvalidRatingError struct {
	Value string
}

func (e *InvalidRatingError) Error() string {
	values := make([]string, len(ratings))
	for i, r := range ratings {
		values[i] = string(r)
	}
	return fmt.Sprintf("The rating must be one of the following values: %s, passed value: %s",
		strings.Join(values, ", "), e.Value)
}

// NewRating 失败时返回 Either 的失败分支，由用例折叠进 Notification
func NewRating(value string) shared.Either[Rating, error] {
	r := Rating(value)
	if !r.IsValid() {
		return shared.Fail[Rating, error](&InvalidRatingError{Value: value})
	}
	return shared.Ok[Rating, error](r)
}

func (r Rating) IsValid() bool {
	return slices.Contains(ratings, r)
}

func (r Rating) String() string { return string(r) }

func (r Rating) Equals(other interface{}) bool {
	o, ok := other.(Rating)
	return ok && o == r
}

var _ shared.ValueObject = RatingFree
