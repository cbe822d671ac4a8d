package graph

import (
	"fmt"

	"github.com/graphql-go/graphql"
)

// inputMap はリゾルバのinput引数をマップとして取り出す。
func inputMap(p graphql.ResolveParams) (map[string]interface{}, error) {
	input, ok := p.Args["input"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("input argument is required")
	}
	return input, nil
}

// stringArg は必須の文字列フィールドを取り出す。
// 型はスキーマのNonNull制約で保証されるため、欠損時はゼロ値を返す。
func stringArg(input map[string]interface{}, key string) string {
	v, _ := input[key].(string)
	return v
}

// intArg は必須の整数フィールドを取り出す。
func intArg(input map[string]interface{}, key string) int {
	v, _ := input[key].(int)
	return v
}

// floatArg は必須の浮動小数フィールドを取り出す。
// Float引数に整数リテラルが渡された場合のintも受け付ける。
func floatArg(input map[string]interface{}, key string) float64 {
	switch v := input[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

// optStringArg は任意の文字列フィールドを取り出す。未指定の場合はnilを返す。
func optStringArg(input map[string]interface{}, key string) *string {
	if v, ok := input[key].(string); ok {
		return &v
	}
	return nil
}

// optIntArg は任意の整数フィールドを取り出す。未指定の場合はnilを返す。
func optIntArg(input map[string]interface{}, key string) *int {
	if v, ok := input[key].(int); ok {
		return &v
	}
	return nil
}

// optFloatArg は任意の浮動小数フィールドを取り出す。未指定の場合はnilを返す。
func optFloatArg(input map[string]interface{}, key string) *float64 {
	switch v := input[key].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	default:
		return nil
	}
}
