package signature

import "errors"

var (
	ErrNoSaveHandler   = errors.New("signature: OnSave is required")
	ErrInvalidTabs     = errors.New("signature: invalid tabs")
	ErrModeUnavailable = errors.New("signature: mode not available")
	ErrCommitDisabled  = errors.New("signature: nothing to commit")
)
