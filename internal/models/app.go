package models

// AppModel represents the UI state - only local UI concerns
type AppModel struct {
	Session       Session  // Latest snapshot from core
	Notices       []Notice // Start-up notices from core
	Input         string   // Query input field
	Mode          Mode     // Selected mode
	Status        string   // Status bar text
	LoadingDots   int      // Animation counter for loading dots
	Width         int      // Terminal width
	Height        int      // Terminal height
	ServiceReady  bool     // Whether the query service accepts submissions
	AIReady       bool     // Whether a model credential is configured
	ResultsOffset int      // Scroll offset of the results panel
}
