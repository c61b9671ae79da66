package handlers

import (
	"Panel-API/domain"
	"Panel-API/pkg/kv"
	"bytes"

	"github.com/gofiber/fiber/v2"
	"github.com/tidwall/gjson"
)

// parseBody returns any JSON value in the request body. An empty or malformed body is ErrMissingBody.
func parseBody(c *fiber.Ctx) (gjson.Result, error) {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 || !gjson.ValidBytes(body) {
		return gjson.Result{}, domain.ErrMissingBody
	}
	return gjson.ParseBytes(body), nil
}

// parseObjectBody returns the JSON object in the request body. An empty body counts as {}.
func parseObjectBody(c *fiber.Ctx) (gjson.Result, error) {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return gjson.Parse("{}"), nil
	}
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, domain.ErrBodyNotObject
	}

	result := gjson.ParseBytes(body)
	if result.IsArray() {
		return gjson.Result{}, domain.ErrBodyIsArray
	}
	if !result.IsObject() {
		return gjson.Result{}, domain.ErrBodyNotObject
	}
	return result, nil
}

// field looks up a top-level member of an object. Repeated keys resolve to the last occurrence.
func field(body gjson.Result, key string) gjson.Result {
	var found gjson.Result
	if !body.IsObject() {
		return found
	}
	body.ForEach(func(k, v gjson.Result) bool {
		if k.Str == key {
			found = v
		}
		return true
	})
	return found
}

// stringField is nil unless the field holds a JSON string.
func stringField(body gjson.Result, key string) *string {
	f := field(body, key)
	if f.Type != gjson.String {
		return nil
	}
	s := f.Str
	return &s
}

// numberField is nil unless the field holds a JSON number.
func numberField(body gjson.Result, key string) *float64 {
	f := field(body, key)
	if f.Type != gjson.Number {
		return nil
	}
	n := f.Num
	return &n
}

func truthyField(body gjson.Result, key string) bool {
	return kv.Truthy([]byte(field(body, key).Raw))
}
