package export

import "errors"

var ErrGenerateFailed = errors.New("failed to generate spreadsheet")
