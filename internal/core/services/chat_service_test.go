package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/adapters/api"
	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/domain"
	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/ports/mocks"
)

func TestChatServiceSendAppendsBothTurns(t *testing.T) {
	gw := mocks.NewMockGateway()
	gw.ChatReply = "42"
	svc := NewChatService(gw)

	reply, err := svc.Send(context.Background(), "what is the answer?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Role != domain.RoleAssistant || reply.Content != "42" {
		t.Errorf("reply = %+v", reply)
	}

	history := svc.History()
	if len(history) != 2 {
		t.Fatalf("history len = %d, want 2", len(history))
	}
	if history[0].Role != domain.RoleUser || history[0].Content != "what is the answer?" {
		t.Errorf("history[0] = %+v", history[0])
	}
	if history[1].Role != domain.RoleAssistant {
		t.Errorf("history[1] = %+v", history[1])
	}
}

func TestChatServiceSendErrorKeepsUserTurn(t *testing.T) {
	gw := mocks.NewMockGateway()
	gw.ChatErr = errors.New("backend down")
	svc := NewChatService(gw)

	if _, err := svc.Send(context.Background(), "hello"); err == nil {
		t.Fatal("expected error")
	}

	// The optimistic user turn survives the failure.
	history := svc.History()
	if len(history) != 1 || history[0].Role != domain.RoleUser {
		t.Errorf("history = %+v, want the user turn alone", history)
	}
}

func TestChatServiceLastReply(t *testing.T) {
	gw := mocks.NewMockGateway()
	gw.ChatReply = "first"
	svc := NewChatService(gw)

	if _, ok := svc.LastReply(); ok {
		t.Error("empty transcript should have no reply")
	}

	if _, err := svc.Send(context.Background(), "a"); err != nil {
		t.Fatal(err)
	}
	gw.ChatReply = "second"
	if _, err := svc.Send(context.Background(), "b"); err != nil {
		t.Fatal(err)
	}

	last, ok := svc.LastReply()
	if !ok || last.Content != "second" {
		t.Errorf("last reply = %+v, ok = %v", last, ok)
	}
}

func TestChatServiceClear(t *testing.T) {
	gw := mocks.NewMockGateway()
	gw.ChatReply = "hi"
	svc := NewChatService(gw)
	if _, err := svc.Send(context.Background(), "hello"); err != nil {
		t.Fatal(err)
	}

	svc.Clear()
	if len(svc.History()) != 0 {
		t.Error("transcript not cleared")
	}
}

func TestChatServiceHistoryIsCopy(t *testing.T) {
	gw := mocks.NewMockGateway()
	gw.ChatReply = "hi"
	svc := NewChatService(gw)
	if _, err := svc.Send(context.Background(), "hello"); err != nil {
		t.Fatal(err)
	}

	history := svc.History()
	history[0].Content = "tampered"
	if svc.History()[0].Content != "hello" {
		t.Error("History exposed internal transcript")
	}
}

func TestIsAuthFailure(t *testing.T) {
	if !IsAuthFailure(fmt.Errorf("chat: %w", api.ErrUnauthorized)) {
		t.Error("wrapped 401 not recognized")
	}
	if IsAuthFailure(errors.New("timeout")) {
		t.Error("generic error treated as auth failure")
	}
}
