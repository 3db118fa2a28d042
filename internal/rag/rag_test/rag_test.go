package rag_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/startup-advisor/backend/internal/config"
	"github.com/startup-advisor/backend/internal/domain/advice"
	"github.com/startup-advisor/backend/internal/rag"
	"github.com/startup-advisor/backend/internal/rag/llm"
	"github.com/startup-advisor/backend/internal/rag/stages"
)

func testContext() context.Context {
	return context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")
}

func TestChat_Scenarios(t *testing.T) {
	ideation := []advice.RetrievedContext{
		{Content: "talk to customers", Source: "lean.md", Score: 0.9},
		{Content: "validate before building", Source: "mom_test.md", Score: 0.8},
	}

	tests := []struct {
		name              string
		query             advice.ChatQuery
		setupMocks        func(v *MockVectorDB, l *MockLLM)
		expectedAnswer    string
		expectedStages    []string
		expectSuccess     bool
		expectLLMCalls    int
		expectDetectCalls int
	}{
		{
			name: "Success_Full_Flow",
			query: advice.ChatQuery{
				Question:           "How do I validate my idea?",
				Language:           config.LangEnglish,
				AutoStageDetection: true,
			},
			setupMocks: func(v *MockVectorDB, l *MockLLM) {
				l.OnDetectStages = func(ctx context.Context, q string) stages.Detection {
					return stages.Detection{Method: stages.MethodParsed, Stages: []string{"01_Ideation_Stage"}}
				}
				v.OnSearchSimilar = func(ctx context.Context, q string, limit int, stageFilter []string) ([]advice.RetrievedContext, error) {
					if limit != config.SearchLimit {
						t.Errorf("limit got %d, want %d", limit, config.SearchLimit)
					}
					if !reflect.DeepEqual(stageFilter, []string{"01_Ideation_Stage"}) {
						t.Errorf("stage filter got %v", stageFilter)
					}
					return ideation, nil
				}
				l.OnGenerateAnswer = func(ctx context.Context, q string, contexts []advice.RetrievedContext, lang string) llm.GroundedAnswer {
					return llm.GroundedAnswer{
						Answer:      "final answer",
						Sources:     []string{"lean.md", "mom_test.md"},
						ContextUsed: len(contexts),
						Success:     true,
					}
				}
			},
			expectedAnswer:    "final answer",
			expectedStages:    []string{"01_Ideation_Stage"},
			expectSuccess:     true,
			expectLLMCalls:    1,
			expectDetectCalls: 1,
		},
		{
			name: "Fallback_No_Context",
			query: advice.ChatQuery{
				Question:           "What is the meaning of life?",
				Language:           config.LangEnglish,
				AutoStageDetection: true,
			},
			setupMocks: func(v *MockVectorDB, l *MockLLM) {
				v.OnSearchSimilar = func(ctx context.Context, q string, limit int, stageFilter []string) ([]advice.RetrievedContext, error) {
					return nil, nil
				}
			},
			expectedAnswer:    rag.FallbackAnswer,
			expectSuccess:     false,
			expectLLMCalls:    0,
			expectDetectCalls: 1,
		},
		{
			name: "Fallback_Search_Error",
			query: advice.ChatQuery{
				Question: "How do I raise a seed round?",
				Language: config.LangArabic,
			},
			setupMocks: func(v *MockVectorDB, l *MockLLM) {
				v.OnSearchSimilar = func(ctx context.Context, q string, limit int, stageFilter []string) ([]advice.RetrievedContext, error) {
					return nil, errors.New("db timeout")
				}
			},
			expectedAnswer: rag.FallbackAnswer,
			expectSuccess:  false,
			expectLLMCalls: 0,
		},
		{
			name: "Caller_Stages_When_Detection_Off",
			query: advice.ChatQuery{
				Question:           "How do I scale my team?",
				Language:           config.LangEnglish,
				AutoStageDetection: false,
				Stages:             []string{"04_Growth_Traction_Stage"},
			},
			setupMocks: func(v *MockVectorDB, l *MockLLM) {
				v.OnSearchSimilar = func(ctx context.Context, q string, limit int, stageFilter []string) ([]advice.RetrievedContext, error) {
					if !reflect.DeepEqual(stageFilter, []string{"04_Growth_Traction_Stage"}) {
						t.Errorf("stage filter got %v, want the caller-supplied stages", stageFilter)
					}
					return ideation[:1], nil
				}
				l.OnGenerateAnswer = func(ctx context.Context, q string, contexts []advice.RetrievedContext, lang string) llm.GroundedAnswer {
					return llm.GroundedAnswer{Answer: "scaling answer", Sources: []string{"lean.md"}, ContextUsed: 1, Success: true}
				}
			},
			expectedAnswer:    "scaling answer",
			expectedStages:    []string{"04_Growth_Traction_Stage"},
			expectSuccess:     true,
			expectLLMCalls:    1,
			expectDetectCalls: 0,
		},
		{
			name: "Detection_Overrides_Caller_Stages",
			query: advice.ChatQuery{
				Question:           "Is my idea worth validating?",
				Language:           config.LangEnglish,
				AutoStageDetection: true,
				Stages:             []string{"07_Scaling_Stage"},
			},
			setupMocks: func(v *MockVectorDB, l *MockLLM) {
				l.OnDetectStages = func(ctx context.Context, q string) stages.Detection {
					return stages.Detection{Method: stages.MethodParsed, Stages: []string{"02_Validation_Stage"}}
				}
				v.OnSearchSimilar = func(ctx context.Context, q string, limit int, stageFilter []string) ([]advice.RetrievedContext, error) {
					if !reflect.DeepEqual(stageFilter, []string{"02_Validation_Stage"}) {
						t.Errorf("stage filter got %v, want the detected stages", stageFilter)
					}
					return ideation[:1], nil
				}
				l.OnGenerateAnswer = func(ctx context.Context, q string, contexts []advice.RetrievedContext, lang string) llm.GroundedAnswer {
					return llm.GroundedAnswer{Answer: "validation answer", Sources: []string{"lean.md"}, ContextUsed: 1, Success: true}
				}
			},
			expectedAnswer:    "validation answer",
			expectedStages:    []string{"02_Validation_Stage"},
			expectSuccess:     true,
			expectLLMCalls:    1,
			expectDetectCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mVec := &MockVectorDB{}
			mLLM := &MockLLM{}
			tt.setupMocks(mVec, mLLM)

			s := rag.NewService(mVec, mLLM, nil)

			result, err := s.Chat(testContext(), tt.query)
			if err != nil {
				t.Fatalf("Chat returned error: %v", err)
			}
			if result.Answer != tt.expectedAnswer {
				t.Errorf("Answer got %q, want %q", result.Answer, tt.expectedAnswer)
			}
			if result.Success != tt.expectSuccess {
				t.Errorf("Success got %v, want %v", result.Success, tt.expectSuccess)
			}
			if len(tt.expectedStages) > 0 && !reflect.DeepEqual(result.DetectedStages, tt.expectedStages) {
				t.Errorf("DetectedStages got %v, want %v", result.DetectedStages, tt.expectedStages)
			}
			if mLLM.GenerateCalls != tt.expectLLMCalls {
				t.Errorf("GenerateAnswer calls got %d, want %d", mLLM.GenerateCalls, tt.expectLLMCalls)
			}
			if mLLM.DetectCalls != tt.expectDetectCalls {
				t.Errorf("DetectStages calls got %d, want %d", mLLM.DetectCalls, tt.expectDetectCalls)
			}
		})
	}
}

func TestChat_UnsupportedLanguage(t *testing.T) {
	mVec := &MockVectorDB{
		OnSearchSimilar: func(ctx context.Context, q string, limit int, stageFilter []string) ([]advice.RetrievedContext, error) {
			t.Error("vector search should not run for an unsupported language")
			return nil, nil
		},
	}
	mLLM := &MockLLM{}
	s := rag.NewService(mVec, mLLM, nil)

	_, err := s.Chat(testContext(), advice.ChatQuery{
		Question: "Comment valider mon idée?",
		Language: "fr",
	})
	if !errors.Is(err, rag.ErrUnsupportedLanguage) {
		t.Fatalf("error got %v, want ErrUnsupportedLanguage", err)
	}
	if mLLM.DetectCalls != 0 || mLLM.GenerateCalls != 0 {
		t.Error("LLM should not be called for an unsupported language")
	}
}

func TestChatWithImage(t *testing.T) {
	mLLM := &MockLLM{
		OnGenerateWithImage: func(ctx context.Context, q string, image []byte, mimeType, language string) advice.ModalResult {
			if mimeType != "image/png" {
				t.Errorf("mimeType got %q", mimeType)
			}
			return advice.ModalResult{Answer: "image answer", Success: true}
		},
	}
	s := rag.NewService(&MockVectorDB{}, mLLM, nil)

	result, err := s.ChatWithImage(testContext(), "what is this?", []byte{1, 2}, "image/png", config.LangEnglish)
	if err != nil {
		t.Fatalf("ChatWithImage returned error: %v", err)
	}
	if !result.Success || result.Answer != "image answer" {
		t.Errorf("unexpected result %+v", result)
	}

	if _, err := s.ChatWithImage(testContext(), "q", nil, "image/png", "de"); !errors.Is(err, rag.ErrUnsupportedLanguage) {
		t.Errorf("error got %v, want ErrUnsupportedLanguage", err)
	}
}

func TestChatWithFile(t *testing.T) {
	mLLM := &MockLLM{
		OnGenerateWithFile: func(ctx context.Context, q string, file []byte, filename, mimeType, language string) advice.ModalResult {
			if filename != "deck.pdf" {
				t.Errorf("filename got %q", filename)
			}
			return advice.ModalResult{Answer: "file answer", Success: true}
		},
	}
	s := rag.NewService(&MockVectorDB{}, mLLM, nil)

	result, err := s.ChatWithFile(testContext(), "review my deck", []byte{1}, "deck.pdf", "application/pdf", config.LangEnglish)
	if err != nil {
		t.Fatalf("ChatWithFile returned error: %v", err)
	}
	if !result.Success || result.Answer != "file answer" {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestKnowledgeBaseStatus(t *testing.T) {
	mVec := &MockVectorDB{
		OnPointCount: func(ctx context.Context) (uint64, bool) { return 42, true },
	}
	s := rag.NewService(mVec, &MockLLM{}, nil)

	points, ok := s.KnowledgeBaseStatus(testContext())
	if !ok || points != 42 {
		t.Errorf("got (%d, %v), want (42, true)", points, ok)
	}
}
