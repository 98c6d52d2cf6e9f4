package sandbox

import (
	"fmt"
	"math"
	"sort"
)

// builtins is the whitelist of callable functions. Nothing outside this
// table is reachable from a script.
var builtins = map[string]func(args []interface{}) (interface{}, error){
	"sum":       builtinSum,
	"min":       builtinMin,
	"max":       builtinMax,
	"len":       builtinLen,
	"abs":       builtinAbs,
	"round":     builtinRound,
	"sort":      builtinSort,
	"range":     builtinRange,
	"enumerate": builtinEnumerate,
	"groupsum":  builtinGroupSum,
}

func numbers(args []interface{}) ([]float64, error) {
	// Accept either a single list argument or variadic numbers.
	values := args
	if len(args) == 1 {
		if list, ok := args[0].([]interface{}); ok {
			values = list
		}
	}
	out := make([]float64, 0, len(values))
	for _, v := range values {
		n, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("sandbox: expected number, got %T", v)
		}
		out = append(out, n)
	}
	return out, nil
}

func builtinSum(args []interface{}) (interface{}, error) {
	nums, err := numbers(args)
	if err != nil {
		return nil, err
	}
	total := 0.0
	for _, n := range nums {
		total += n
	}
	return total, nil
}

func builtinMin(args []interface{}) (interface{}, error) {
	nums, err := numbers(args)
	if err != nil {
		return nil, err
	}
	if len(nums) == 0 {
		return nil, fmt.Errorf("sandbox: min of empty sequence")
	}
	m := nums[0]
	for _, n := range nums[1:] {
		if n < m {
			m = n
		}
	}
	return m, nil
}

func builtinMax(args []interface{}) (interface{}, error) {
	nums, err := numbers(args)
	if err != nil {
		return nil, err
	}
	if len(nums) == 0 {
		return nil, fmt.Errorf("sandbox: max of empty sequence")
	}
	m := nums[0]
	for _, n := range nums[1:] {
		if n > m {
			m = n
		}
	}
	return m, nil
}

func builtinLen(args []interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("sandbox: len takes exactly one argument")
	}
	switch v := args[0].(type) {
	case []interface{}:
		return float64(len(v)), nil
	case string:
		return float64(len([]rune(v))), nil
	case map[string]float64:
		return float64(len(v)), nil
	}
	return nil, fmt.Errorf("sandbox: len of unsupported type %T", args[0])
}

func builtinAbs(args []interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("sandbox: abs takes exactly one argument")
	}
	n, ok := args[0].(float64)
	if !ok {
		return nil, fmt.Errorf("sandbox: abs requires a number, got %T", args[0])
	}
	return math.Abs(n), nil
}

func builtinRound(args []interface{}) (interface{}, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, fmt.Errorf("sandbox: round takes one or two arguments")
	}
	n, ok := args[0].(float64)
	if !ok {
		return nil, fmt.Errorf("sandbox: round requires a number, got %T", args[0])
	}
	digits := 0.0
	if len(args) == 2 {
		d, ok := args[1].(float64)
		if !ok {
			return nil, fmt.Errorf("sandbox: round digits must be a number, got %T", args[1])
		}
		digits = d
	}
	scale := math.Pow(10, digits)
	return math.Round(n*scale) / scale, nil
}

func builtinSort(args []interface{}) (interface{}, error) {
	nums, err := numbers(args)
	if err != nil {
		return nil, err
	}
	sort.Float64s(nums)
	out := make([]interface{}, len(nums))
	for i, n := range nums {
		out[i] = n
	}
	return out, nil
}

func builtinRange(args []interface{}) (interface{}, error) {
	nums, err := numbers(args)
	if err != nil {
		return nil, err
	}
	var start, stop float64
	switch len(nums) {
	case 1:
		stop = nums[0]
	case 2:
		start, stop = nums[0], nums[1]
	default:
		return nil, fmt.Errorf("sandbox: range takes one or two arguments")
	}
	if stop-start > maxNodes {
		return nil, ErrBudgetExceeded
	}
	var out []interface{}
	for i := start; i < stop; i++ {
		out = append(out, i)
	}
	return out, nil
}

func builtinEnumerate(args []interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("sandbox: enumerate takes exactly one argument")
	}
	list, ok := args[0].([]interface{})
	if !ok {
		return nil, fmt.Errorf("sandbox: enumerate requires a list, got %T", args[0])
	}
	out := make([]interface{}, len(list))
	for i, v := range list {
		out[i] = []interface{}{float64(i), v}
	}
	return out, nil
}

// builtinGroupSum aggregates a list of [key, amount] pairs into a map of
// key to summed amount. This is the primitive the analyst's category
// breakdown script is built around.
func builtinGroupSum(args []interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("sandbox: groupsum takes exactly one argument")
	}
	pairs, ok := args[0].([]interface{})
	if !ok {
		return nil, fmt.Errorf("sandbox: groupsum requires a list of pairs, got %T", args[0])
	}

	totals := make(map[string]float64, len(pairs))
	for _, item := range pairs {
		pair, ok := item.([]interface{})
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("sandbox: groupsum element must be a [key, amount] pair")
		}
		key, ok := pair[0].(string)
		if !ok {
			return nil, fmt.Errorf("sandbox: groupsum key must be a string, got %T", pair[0])
		}
		amount, ok := pair[1].(float64)
		if !ok {
			return nil, fmt.Errorf("sandbox: groupsum amount must be a number, got %T", pair[1])
		}
		totals[key] += amount
	}
	return totals, nil
}
