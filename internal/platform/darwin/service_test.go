//go:build darwin && cgo

package darwin

import (
	"errors"
	"testing"

	"github.com/mj1618/ax-inspector/internal/ax"
)

func TestServiceRejectsForeignNode(t *testing.T) {
	s := NewService()

	if _, err := s.AttributeNames("not an element"); !errors.Is(err, ax.ErrInvalidNodeHandle) {
		t.Errorf("AttributeNames err = %v, want ErrInvalidNodeHandle", err)
	}
	if _, err := s.AttributeValue(nil, ax.AttrRole); !errors.Is(err, ax.ErrInvalidNodeHandle) {
		t.Errorf("AttributeValue err = %v, want ErrInvalidNodeHandle", err)
	}
}

func TestResolveUnknownApplication(t *testing.T) {
	r := NewResolver()
	_, err := r.ResolveByName("definitely-not-a-running-app-7f3a")
	if !errors.Is(err, ax.ErrApplicationNotFound) {
		t.Errorf("err = %v, want ErrApplicationNotFound", err)
	}
}
