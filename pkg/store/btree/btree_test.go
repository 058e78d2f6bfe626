package btree

import (
	"testing"

	"github.com/dborchard/tracekv/pkg/store/storetest"
)

func Test1(t *testing.T) { storetest.Test1(New, t) }
func Test2(t *testing.T) { storetest.Test2(New, t) }
func Test3(t *testing.T) { storetest.Test3(New, t) }
func Test4(t *testing.T) { storetest.Test4(New, t) }
func Test5(t *testing.T) { storetest.Test5(New, t) }
func Test6(t *testing.T) { storetest.Test6(New, t) }
func Test7(t *testing.T) { storetest.Test7(New, t) }
func Test8(t *testing.T) { storetest.Test8(New, t) }
