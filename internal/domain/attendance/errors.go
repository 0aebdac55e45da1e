package attendance

import "errors"

var (
	ErrRegularizationIDRequired = errors.New("regularization id is required")
	ErrReviewCommentRequired    = errors.New("review comment is required")
	ErrStatusRequired           = errors.New("status is required")
)
