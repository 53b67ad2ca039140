// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package horae

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type TaskTestSuite struct {
	suite.Suite

	called bool
}

func (suite *TaskTestSuite) SetupTest() {
	suite.called = false
}

func (suite *TaskTestSuite) SetupSubTest() {
	suite.called = false
}

// assertTask verifies that the converted Task invokes the original closure.
func (suite *TaskTestSuite) assertTask(t Task) {
	suite.Require().NotNil(t)
	t()
	suite.True(suite.called)
}

// testAsTaskNoResult verifies func() and defined types based on it.
func (suite *TaskTestSuite) testAsTaskNoResult() {
	suite.Run("Plain", func() {
		tf := func() { suite.called = true }
		suite.assertTask(AsTask(tf, nil))
	})

	suite.Run("DefinedType", func() {
		type runner func()
		tf := runner(func() { suite.called = true })
		suite.assertTask(AsTask(tf, nil))
	})
}

// testAsTaskReturnError verifies func() error and error routing.
func (suite *TaskTestSuite) testAsTaskReturnError() {
	suite.Run("NilError", func() {
		var reported []error
		tf := func() error { suite.called = true; return nil }
		suite.assertTask(AsTask(tf, func(err error) { reported = append(reported, err) }))
		suite.Empty(reported)
	})

	suite.Run("Error", func() {
		var reported []error
		expected := errors.New("expected")
		tf := func() error { suite.called = true; return expected }
		suite.assertTask(AsTask(tf, func(err error) { reported = append(reported, err) }))
		suite.Require().Len(reported, 1)
		suite.ErrorIs(reported[0], expected)
	})

	suite.Run("NoErrorer", func() {
		tf := func() error { suite.called = true; return errors.New("dropped") }
		suite.assertTask(AsTask(tf, nil))
	})

	suite.Run("DefinedType", func() {
		type failer func() error
		var reported []error
		expected := errors.New("expected")
		tf := failer(func() error { suite.called = true; return expected })
		suite.assertTask(AsTask(tf, func(err error) { reported = append(reported, err) }))
		suite.Require().Len(reported, 1)
		suite.ErrorIs(reported[0], expected)
	})
}

func (suite *TaskTestSuite) TestAsTask() {
	suite.Run("NoResult", suite.testAsTaskNoResult)
	suite.Run("ReturnError", suite.testAsTaskReturnError)
}

func TestTask(t *testing.T) {
	suite.Run(t, new(TaskTestSuite))
}
