package vm

import (
	"context"
	"errors"
	"testing"

	"github.com/jbweber/virtnative/internal/protocol"
)

func TestGetWithDeps_Found(t *testing.T) {
	ctx := context.Background()
	mock := newMockDomainClient()

	mock.domainLookupByNameFunc = func(ctx context.Context, args *protocol.DomainLookupByNameArgs) (*protocol.DomainLookupByNameRet, error) {
		return &protocol.DomainLookupByNameRet{
			Dom: protocol.NonnullDomain{
				Name: args.Name,
				UUID: protocol.UUID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10},
			},
		}, nil
	}
	mock.domainGetStateFunc = func(ctx context.Context, args *protocol.DomainGetStateArgs) (*protocol.DomainGetStateRet, error) {
		return &protocol.DomainGetStateRet{State: 1}, nil
	}
	mock.domainGetInfoFunc = func(ctx context.Context, args *protocol.DomainGetInfoArgs) (*protocol.DomainGetInfoRet, error) {
		return &protocol.DomainGetInfoRet{State: 1, Memory: 2097152, NrVirtCPU: 2}, nil
	}

	info, err := getWithDeps(ctx, mock, "test-vm")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if info.Name != "test-vm" {
		t.Errorf("expected name 'test-vm', got %q", info.Name)
	}
	if info.State != "running" {
		t.Errorf("expected state 'running', got %q", info.State)
	}
	if info.UUID != "01020304-0506-0708-090a-0b0c0d0e0f10" {
		t.Errorf("unexpected UUID: %q", info.UUID)
	}
}

func TestGetWithDeps_NotFound(t *testing.T) {
	ctx := context.Background()
	mock := newMockDomainClient()

	mock.domainLookupByNameFunc = func(ctx context.Context, args *protocol.DomainLookupByNameArgs) (*protocol.DomainLookupByNameRet, error) {
		return nil, errors.New("domain not found")
	}

	_, err := getWithDeps(ctx, mock, "missing-vm")
	if err == nil {
		t.Fatal("expected error for missing VM, got nil")
	}
}

func TestGetWithDeps_GetInfoError(t *testing.T) {
	ctx := context.Background()
	mock := newMockDomainClient()

	mock.domainLookupByNameFunc = func(ctx context.Context, args *protocol.DomainLookupByNameArgs) (*protocol.DomainLookupByNameRet, error) {
		return &protocol.DomainLookupByNameRet{Dom: protocol.NonnullDomain{Name: args.Name}}, nil
	}
	mock.domainGetStateFunc = func(ctx context.Context, args *protocol.DomainGetStateArgs) (*protocol.DomainGetStateRet, error) {
		return nil, errors.New("rpc failure")
	}

	_, err := getWithDeps(ctx, mock, "test-vm")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
