package xform_test

import (
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/on-the-ground/xform_go/xform"

	"github.com/stretchr/testify/assert"
)

func inc(x int) int    { return x + 1 }
func double(x int) int { return x * 2 }
func minus3(x int) int { return x - 3 }
func add(x, y int) int { return x + y }

func TestComp1_IsNoOp(t *testing.T) {
	for _, x := range []int{-7, 0, 1, 42} {
		assert.Equal(t, inc(x), xform.Comp1(inc)(x))
	}
}

func TestComp_Associativity(t *testing.T) {
	left := xform.Comp2(inc, xform.Comp2(double, minus3))
	right := xform.Comp2(xform.Comp2(inc, double), minus3)
	flat := xform.Comp3(inc, double, minus3)

	for _, x := range []int{-5, 0, 3, 100} {
		want := inc(double(minus3(x)))
		assert.Equal(t, want, left(x))
		assert.Equal(t, want, right(x))
		assert.Equal(t, want, flat(x))
	}
}

func TestComp_IdentityLaw(t *testing.T) {
	for _, x := range []int{-1, 0, 9} {
		assert.Equal(t, double(x), xform.Comp2(double, xform.Identity[int])(x))
		assert.Equal(t, double(x), xform.Comp2(xform.Identity[int], double)(x))
	}
}

func TestComp_AppliesRightToLeft(t *testing.T) {
	appender := func(s string) func(string) string {
		return func(in string) string { return in + s }
	}

	assert.Equal(t, "321", xform.Comp3(appender("1"), appender("2"), appender("3"))(""))
	assert.Equal(t, "4321", xform.Comp4(appender("1"), appender("2"), appender("3"), appender("4"))(""))
	assert.Equal(t, "54321", xform.Comp5(
		appender("1"), appender("2"), appender("3"), appender("4"), appender("5"),
	)(""))
	assert.Equal(t, "654321", xform.Comp6(
		appender("1"), appender("2"), appender("3"), appender("4"), appender("5"), appender("6"),
	)(""))
}

func TestComp_HeterogeneousStages(t *testing.T) {
	isLong := func(n int) bool { return n > 3 }
	strlen := func(s string) int { return len(s) }

	pipeline := xform.Comp4(isLong, strlen, strconv.Itoa, double)

	assert.False(t, pipeline(7))   // "14"
	assert.True(t, pipeline(5000)) // "10000"
}

func TestComp_TrailingArgumentsReachOutermost(t *testing.T) {
	assert.Equal(t, 10, xform.Comp2Y1(add, double)(3, 4))

	suffix := func(s, y string) string { return s + y }
	assert.Equal(t, "42!", xform.Comp3Y1(suffix, strconv.Itoa, double)(21, "!"))

	wrap := func(s string, l, r string) string { return l + s + r }
	assert.Equal(t, "[6]", xform.Comp2Y2(wrap, func(x int) string { return strconv.Itoa(x) })(6, "[", "]"))
	assert.Equal(t, "<12>", xform.Comp3Y2(wrap, strconv.Itoa, double)(6, "<", ">"))

	repeat := func(s string, n int) string { return strings.Repeat(s, n) }
	assert.Equal(t, "99", xform.Comp4Y1(repeat, strconv.Itoa, inc, double)(4, 2))
}

func TestComposed_Call(t *testing.T) {
	c := xform.NewComposed(strconv.Itoa, double)
	assert.Equal(t, "8", c.Call(4))

	cy := xform.NewComposedY1(add, double)
	assert.Equal(t, 10, cy.Call(3, 4))
}

func TestComp_EmptyAggregateIsOrdinaryArgument(t *testing.T) {
	describe := func(xform.T0) string { return "nothing" }
	drop := func(int) xform.T0 { return xform.Tuplify0() }

	assert.Equal(t, "nothing", xform.Comp2(describe, drop)(5))
}

func TestComp_ConcurrentInvocation(t *testing.T) {
	pipeline := xform.Comp3(inc, double, minus3)

	var wg sync.WaitGroup
	results := make([]int, 64)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = pipeline(i)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		assert.Equal(t, inc(double(minus3(i))), got)
	}
}

func TestPipeline_TuplifyConstantlyIdentity(t *testing.T) {
	pipeline := xform.Comp3(xform.Tuplify1[int], xform.ConstantlyI1[int](10), xform.Identity[int])
	assert.Equal(t, 10, pipeline(99))
}
