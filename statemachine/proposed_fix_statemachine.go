// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package statemachine

import (
	"errors"
	"fmt"

	"github.com/l3montree-dev/fixflow/dtos"
)

type FixEvent string

const (
	FixEventApprove     FixEvent = "approve"
	FixEventReject      FixEvent = "reject"
	FixEventApplyFailed FixEvent = "applyFailed"
)

var ErrInvalidTransition = errors.New("invalid proposed fix transition")

// AUTO_FIXED is never a target. It is only ever set when a fix is created.
var fixTransitions = map[dtos.FixStatus]map[FixEvent]dtos.FixStatus{
	dtos.FixStatusPending: {
		FixEventApprove:     dtos.FixStatusApproved,
		FixEventReject:      dtos.FixStatusRejected,
		FixEventApplyFailed: dtos.FixStatusPending,
	},
}

// Transition returns the status reached from current through event.
func Transition(current dtos.FixStatus, event FixEvent) (dtos.FixStatus, error) {
	next, ok := fixTransitions[current][event]
	if !ok {
		return current, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, event, current)
	}
	return next, nil
}

func CanTransition(current dtos.FixStatus, event FixEvent) bool {
	_, err := Transition(current, event)
	return err == nil
}

// IsValidInitialStatus reports whether a fix may be created with the given status.
func IsValidInitialStatus(status dtos.FixStatus) bool {
	return status == dtos.FixStatusPending || status == dtos.FixStatusAutoFixed
}
