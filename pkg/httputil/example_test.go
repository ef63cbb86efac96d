package httputil_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/matzehuels/graphsketch/pkg/httputil"
)

func ExamplePolicy_Do() {
	calls := 0
	p := httputil.Policy{Attempts: 3, Delay: time.Millisecond}
	err := p.Do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return &httputil.RetryableError{Err: errors.New("host busy")}
		}
		return nil
	})
	fmt.Println("calls:", calls, "err:", err)
	// Output:
	// calls: 3 err: <nil>
}
