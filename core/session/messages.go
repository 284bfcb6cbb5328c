// ABOUTME: Translation of search failures into user-facing text
// ABOUTME: The only place where errors become strings shown to end users

package session

import (
	"errors"
	"strings"

	coreerrors "telescout-api/core/errors"
	"telescout-api/pkg/locale"
)

// UserMessage returns the text shown to users for err.
// Remote failures are shown as reported; everything else comes from the catalog.
func UserMessage(err error, messages locale.Messages) string {
	if err == nil {
		return ""
	}

	var parseErr *coreerrors.ExtractionParseError
	if errors.As(err, &parseErr) {
		return messages.ParseFailure
	}

	var remoteErr *coreerrors.RemoteCallError
	if errors.As(err, &remoteErr) {
		if remoteErr.Err != nil {
			if msg := strings.TrimSpace(remoteErr.Err.Error()); msg != "" {
				return msg
			}
		}
		return messages.Generic
	}

	return messages.Generic
}
