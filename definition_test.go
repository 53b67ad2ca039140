// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package horae

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type DefinitionTestSuite struct {
	suite.Suite
}

func (suite *DefinitionTestSuite) testCloneEmpty() {
	suite.Nil(Attributes(nil).Clone())
	suite.Nil(Attributes{}.Clone())
}

func (suite *DefinitionTestSuite) testCloneNotEmpty() {
	original := Attributes{
		"test":  "value",
		"count": 42,
	}

	clone := original.Clone()
	suite.Equal(original, clone)

	// the clone must be independent of the original
	original["test"] = "changed"
	suite.Equal("value", clone["test"])
}

func (suite *DefinitionTestSuite) TestClone() {
	suite.Run("Empty", suite.testCloneEmpty)
	suite.Run("NotEmpty", suite.testCloneNotEmpty)
}

func TestDefinition(t *testing.T) {
	suite.Run(t, new(DefinitionTestSuite))
}
