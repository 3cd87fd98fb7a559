package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPrecedence(t *testing.T) {
	tests := []struct {
		name string
		rc   RequestContext
		kind IntentKind
		view string
	}{
		{
			name: "recovery fragment beats quiz id",
			rc: RequestContext{
				Path:     "/",
				Query:    map[string]string{"id": "ab123"},
				Fragment: "access_token=xyz&type=recovery",
			},
			kind: IntentRecoveryFlow,
			view: ViewProcessing,
		},
		{
			name: "recovery query param",
			rc:   RequestContext{Path: "/", Query: map[string]string{"type": "recovery"}},
			kind: IntentRecoveryFlow,
			view: ViewProcessing,
		},
		{
			name: "recovery token param",
			rc:   RequestContext{Path: "/", Query: map[string]string{"token": "abcdef"}},
			kind: IntentRecoveryFlow,
			view: ViewProcessing,
		},
		{
			name: "payment return beats quiz id",
			rc:   RequestContext{Path: "/", Query: map[string]string{"payment": "success", "id": "ab123"}},
			kind: IntentPaymentReturn,
			view: ViewDashboard,
		},
		{
			name: "payment cancel also lands on dashboard",
			rc:   RequestContext{Path: "/", Query: map[string]string{"payment": "cancel"}},
			kind: IntentPaymentReturn,
			view: ViewDashboard,
		},
		{
			name: "quiz id beats legacy page param",
			rc:   RequestContext{Path: "/", Query: map[string]string{"id": "ab123", "page": "faq"}},
			kind: IntentQuizView,
			view: ViewQuiz,
		},
		{
			name: "legacy page param",
			rc:   RequestContext{Path: "/", Query: map[string]string{"page": "faq"}},
			kind: IntentLegacyPageParam,
			view: "faq",
		},
		{
			name: "path route",
			rc:   RequestContext{Path: "/dashboard"},
			kind: IntentPathRoute,
			view: ViewDashboard,
		},
		{
			name: "unknown path falls back to portal",
			rc:   RequestContext{Path: "/nope"},
			kind: IntentDefault,
			view: ViewPortal,
		},
		{
			name: "bare root is the portal",
			rc:   RequestContext{Path: "/"},
			kind: IntentPathRoute,
			view: ViewPortal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := Classify(tt.rc)
			assert.Equal(t, tt.kind, intent.Kind)
			assert.Equal(t, tt.view, intent.View)
		})
	}
}

func TestClassifyQuizIdentifierCarried(t *testing.T) {
	intent := Classify(RequestContext{Path: "/", Query: map[string]string{"id": "ab123"}})
	assert.Equal(t, IntentQuizView, intent.Kind)
	assert.Equal(t, "ab123", intent.QuizIdentifier)
}

func TestClassifyPathTable(t *testing.T) {
	for path, view := range map[string]string{
		"/":              ViewPortal,
		"/howto":         "howto",
		"/effective":     "effective",
		"/logic":         "logic",
		"/contact":       "contact",
		"/legal":         "legal",
		"/privacy":       "privacy",
		"/faq":           "faq",
		"/price":         "price",
		"/announcements": "announcements",
		"/dashboard":     ViewDashboard,
		"/editor":        ViewEditor,
	} {
		intent := Classify(RequestContext{Path: path})
		assert.Equal(t, view, intent.View, "path %s", path)
	}
}
