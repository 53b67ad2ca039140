// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package horae

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type StateTestSuite struct {
	suite.Suite
}

func (suite *StateTestSuite) TestDistinctStrings() {
	// we don't care what the string values are, just that they're distinct
	m := make(map[string]bool)
	m[StateIdle.String()] = true
	m[StateOneShot.String()] = true
	m[StateInterval.String()] = true
	m[StateStopped.String()] = true
	suite.Len(m, 4)
}

func (suite *StateTestSuite) TestMarshalText() {
	text, err := StateInterval.MarshalText()
	suite.Require().NoError(err)
	suite.Equal(StateInterval.String(), string(text))
}

func TestState(t *testing.T) {
	suite.Run(t, new(StateTestSuite))
}
