package binding

import (
	"encoding/json"
	"reflect"
	"testing"
)

func decode(t *testing.T, src string) any {
	t.Helper()
	var data any
	if err := json.Unmarshal([]byte(src), &data); err != nil {
		t.Fatalf("invalid fixture: %v", err)
	}
	return data
}

func TestInterpolate(t *testing.T) {
	data := decode(t, `{"user":{"name":"Ada"},"items":[{"price":12.5},{"price":3}],"count":1000000}`)
	cases := map[string]string{
		"Hello, ${user.name}!":                      "Hello, Ada!",
		"${items[1].price} and ${ items[0].price }": "3 and 12.5",
		"<mark>${count}</mark> users":               "<mark>1000000</mark> users",
		"keep ${user.age}":                          "keep ${user.age}",
		"keep ${items[9].price}":                    "keep ${items[9].price}",
		"no placeholders":                           "no placeholders",
	}
	for in, want := range cases {
		if got := Interpolate(in, data); got != want {
			t.Fatalf("%q: got=%q want=%q", in, got, want)
		}
	}
	if got := Interpolate("${user.name}", nil); got != "${user.name}" {
		t.Fatalf("nil data must leave text alone, got %q", got)
	}
}

func TestUnresolved(t *testing.T) {
	data := decode(t, `{"a":{"b":[1,2]}}`)
	got := Unresolved("${a.b[1]} ${a.c} ${x[0]} ${a.b[x]}", data)
	want := []string{"a.c", "x[0]", "a.b[x]"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got=%q want=%q", got, want)
	}
}
