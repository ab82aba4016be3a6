package colstore

import "errors"

var (
	ErrZeroSizedOption            = errors.New("size option must be greater than 0")
	ErrPageSizeExceedsClusterSize = errors.New("approx unzipped page size exceeds approx zipped cluster size")
	ErrClusterSizeExceedsLimit    = errors.New("approx zipped cluster size exceeds max unzipped cluster size")
	ErrSmallClusterLimitExceeded  = errors.New("max unzipped cluster size exceeds the small cluster limit")
	ErrObjectClassIsEmpty         = errors.New("the object class is empty")
)
