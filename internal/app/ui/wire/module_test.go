package wire

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"bidmatch/internal/app/ui/navigation"
	"bidmatch/internal/app/ui/pages"
	"bidmatch/internal/config"
	"bidmatch/internal/config/logger"
)

func setupLogger(ctrl *gomock.Controller) *logger.MockLogger {
	mockLogger := logger.NewMockLogger(ctrl)
	mockLogger.EXPECT().WithComponent(gomock.Any()).Return(mockLogger).AnyTimes()
	mockLogger.EXPECT().Debug().Return(nil).AnyTimes()
	mockLogger.EXPECT().Warn().Return(nil).AnyTimes()

	return mockLogger
}

func Test_NewUI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	params := UIParams{
		Config: config.DefaultConfig(),
		Pages:  pages.DefaultRegistry(),
		Logger: setupLogger(ctrl),
	}

	factory := NewUI(params)
	assert.NotNil(t, factory)
}

func Test_UI_CreateProgram(t *testing.T) {
	tests := []struct {
		name      string
		altScreen bool
		mouse     bool
	}{
		{name: "defaults", altScreen: true, mouse: true},
		{name: "inline without mouse", altScreen: false, mouse: false},
		{name: "inline with mouse", altScreen: false, mouse: true},
		{name: "alt screen without mouse", altScreen: true, mouse: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cfg := config.DefaultConfig()
			cfg.UI.AltScreen = tt.altScreen
			cfg.UI.Mouse = tt.mouse

			factory := NewUI(UIParams{
				Config: cfg,
				Pages:  pages.DefaultRegistry(),
				Logger: setupLogger(ctrl),
			})

			program, err := factory(context.Background(), navigation.PageSearch)

			assert.NoError(t, err)
			assert.NotNil(t, program)
		})
	}
}

func Test_mouseEnabled(t *testing.T) {
	tests := []struct {
		name      string
		altScreen bool
		mouse     bool
		expected  bool
	}{
		{name: "alt screen with mouse", altScreen: true, mouse: true, expected: true},
		{name: "inline with mouse", altScreen: false, mouse: true, expected: false},
		{name: "alt screen without mouse", altScreen: true, mouse: false, expected: false},
		{name: "inline without mouse", altScreen: false, mouse: false, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.UI.AltScreen = tt.altScreen
			cfg.UI.Mouse = tt.mouse

			assert.Equal(t, tt.expected, mouseEnabled(cfg))
		})
	}
}

func Test_UI_InlineMouseWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := logger.NewMockLogger(ctrl)
	mockLogger.EXPECT().WithComponent(gomock.Any()).Return(mockLogger).AnyTimes()
	mockLogger.EXPECT().Debug().Return(nil).AnyTimes()
	mockLogger.EXPECT().Warn().Return(nil).Times(1)

	cfg := config.DefaultConfig()
	cfg.UI.AltScreen = false

	factory := NewUI(UIParams{Config: cfg, Pages: pages.DefaultRegistry(), Logger: mockLogger})

	program, err := factory(context.Background(), navigation.PageDashboard)

	assert.NoError(t, err)
	assert.NotNil(t, program)
}
