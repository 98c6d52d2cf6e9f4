package sandbox

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type EvaluatorTestSuite struct {
	suite.Suite
	evaluator *Evaluator
}

func TestEvaluatorSuite(t *testing.T) {
	suite.Run(t, new(EvaluatorTestSuite))
}

func (s *EvaluatorTestSuite) SetupTest() {
	s.evaluator = New(5 * time.Second)
}

func (s *EvaluatorTestSuite) eval(script string) interface{} {
	value, err := s.evaluator.Eval(context.Background(), script)
	s.Require().NoError(err, "script: %s", script)
	return value
}

func (s *EvaluatorTestSuite) TestArithmetic() {
	testCases := []struct {
		script   string
		expected float64
	}{
		{"1 + 2", 3},
		{"2 * 3 + 4", 10},
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"10 / 4", 2.5},
		{"-5 + 3", -2},
		{"7 % 3", 1},
		{"1.5 * 2", 3},
	}

	for _, tc := range testCases {
		s.Run(tc.script, func() {
			s.InDelta(tc.expected, s.eval(tc.script), 1e-9)
		})
	}
}

func (s *EvaluatorTestSuite) TestAggregationBuiltins() {
	s.InDelta(60.0, s.eval("sum([10, 20, 30])"), 1e-9)
	s.InDelta(10.0, s.eval("min([10, 20, 30])"), 1e-9)
	s.InDelta(30.0, s.eval("max(10, 20, 30)"), 1e-9)
	s.InDelta(3.0, s.eval("len([1, 2, 3])"), 1e-9)
	s.InDelta(2.5, s.eval("abs(-2.5)"), 1e-9)
	s.InDelta(3.14, s.eval("round(3.14159, 2)"), 1e-9)
	s.Equal([]interface{}{1.0, 2.0, 3.0}, s.eval("sort([3, 1, 2])"))
	s.Equal([]interface{}{0.0, 1.0, 2.0}, s.eval("range(3)"))
	s.InDelta(10.0, s.eval("sum(range(5))"), 1e-9)
}

func (s *EvaluatorTestSuite) TestEnumerate() {
	value := s.eval(`enumerate(["a", "b"])`)
	s.Equal([]interface{}{
		[]interface{}{0.0, "a"},
		[]interface{}{1.0, "b"},
	}, value)
}

func (s *EvaluatorTestSuite) TestIndexing() {
	s.InDelta(20.0, s.eval("[10, 20, 30][1]"), 1e-9)
	s.Equal("b", s.eval(`["a", "b"][1]`))
	s.InDelta(50.0, s.eval(`groupsum([["FOOD", 50]])["FOOD"]`), 1e-9)
}

func (s *EvaluatorTestSuite) TestGroupSum() {
	value := s.eval(`groupsum([["FOOD", 50], ["TRANSPORT", 120], ["FOOD", 30.5]])`)
	totals, ok := value.(map[string]float64)
	s.Require().True(ok)
	s.InDelta(80.5, totals["FOOD"], 1e-9)
	s.InDelta(120.0, totals["TRANSPORT"], 1e-9)
	s.Len(totals, 2)
}

func (s *EvaluatorTestSuite) TestStringEscapes() {
	value := s.eval(`groupsum([["say \"hi\"", 1]])`)
	totals := value.(map[string]float64)
	s.InDelta(1.0, totals[`say "hi"`], 1e-9)
}

func (s *EvaluatorTestSuite) TestDisallowedOperations() {
	scripts := []string{
		"open(\"/etc/passwd\")",
		"exec(\"rm\")",
		"import(\"os\")",
		"foo",
		"x + 1",
		"print(1)",
	}

	for _, script := range scripts {
		s.Run(script, func() {
			_, err := s.evaluator.Eval(context.Background(), script)
			s.Error(err)
		})
	}
}

func (s *EvaluatorTestSuite) TestSyntaxErrors() {
	scripts := []string{
		"1 +",
		"(1",
		"[1, 2",
		`"unterminated`,
		"sum(1,",
		"1 2",
	}

	for _, script := range scripts {
		s.Run(script, func() {
			_, err := s.evaluator.Eval(context.Background(), script)
			s.Error(err)
		})
	}
}

func (s *EvaluatorTestSuite) TestTypeErrors() {
	scripts := []string{
		`1 + "a"`,
		`sum(["a"])`,
		"1 / 0",
		"[1][5]",
		`groupsum([[1, 2]])`,
	}

	for _, script := range scripts {
		_, err := s.evaluator.Eval(context.Background(), script)
		s.Error(err, "script: %s", script)
	}
}

func (s *EvaluatorTestSuite) TestTimeout() {
	evaluator := New(time.Nanosecond)

	// Large enough that evaluation cannot beat an already-expired deadline.
	var sb strings.Builder
	sb.WriteString("sum([")
	for i := 0; i < 5000; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", i)
	}
	sb.WriteString("])")

	_, err := evaluator.Eval(context.Background(), sb.String())
	s.ErrorIs(err, ErrTimeout)
}

func (s *EvaluatorTestSuite) TestRangeBudget() {
	_, err := s.evaluator.Eval(context.Background(), "range(100000000)")
	s.ErrorIs(err, ErrBudgetExceeded)
}

func (s *EvaluatorTestSuite) TestDefaultTimeout() {
	s.Equal(5*time.Second, New(0).timeout)
	s.Equal(2*time.Second, New(2*time.Second).timeout)
}
