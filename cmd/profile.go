package cmd

import (
	"fmt"
	"log"
	"maps"
	"slices"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/NovaQuest/internal/config"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage AI and NASA credentials",
	Long: `Manage profiles for the generative model (API key, base URL, model) and the
NASA API key shared by every profile.`,
}

var listProfilesCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()

		fmt.Printf("Config: %s\n", cfg.Path())
		fmt.Printf("Active Profile: %s\n", cfg.ActiveProfile)
		fmt.Printf("NASA API Key: %s\n\n", describeNASAKey(cfg))
		fmt.Println("Available Profiles:")
		for _, name := range profileNames(cfg, "") {
			profile := cfg.Profiles[name]
			marker := ""
			if name == cfg.ActiveProfile {
				marker = " (active)"
			}
			fmt.Printf("  %s%s\n", name, marker)
			fmt.Printf("    Model: %s\n", orDefaultText(profile.Model, config.DefaultModel))
			if profile.BaseURL != "" {
				fmt.Printf("    Base URL: %s\n", profile.BaseURL)
			}
			fmt.Printf("    API Key: %s\n", yesNo(profile.APIKey != ""))
			fmt.Println()
		}
		if cfg.KeyFromEnv() {
			fmt.Println("Note: GEMINI_API_KEY is set and overrides the profile key.")
		}
	},
}

var showProfileCmd = &cobra.Command{
	Use:   "show [profile-name]",
	Short: "Show profile details",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()

		profileName := args[0]
		profile, exists := cfg.Profiles[profileName]
		if !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		fmt.Printf("Profile: %s\n", profileName)
		fmt.Printf("Model: %s\n", orDefaultText(profile.Model, config.DefaultModel))
		fmt.Printf("Base URL: %s\n", orDefaultText(profile.BaseURL, config.DefaultBaseURL))
		hasKey := "Not set"
		if profile.APIKey != "" {
			hasKey = "Set (hidden for security)"
		}
		fmt.Printf("API Key: %s\n", hasKey)
	},
}

var addProfileCmd = &cobra.Command{
	Use:   "add [profile-name]",
	Short: "Add a new profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()

		var profileName string
		if len(args) > 0 {
			profileName = args[0]
		} else {
			profileName = mustPrompt(promptui.Prompt{Label: "Profile name"})
		}

		if _, exists := cfg.Profiles[profileName]; exists {
			log.Fatalf("Profile '%s' already exists", profileName)
		}

		profile := config.Profile{
			APIKey:  mustPrompt(promptui.Prompt{Label: "Gemini API Key", Mask: '*'}),
			Model:   mustPrompt(promptui.Prompt{Label: "Model", Default: config.DefaultModel}),
			BaseURL: mustPrompt(promptui.Prompt{Label: "Base URL (empty for Gemini)"}),
		}

		cfg.Profiles[profileName] = profile
		mustSave(cfg)

		fmt.Printf("Profile '%s' added successfully!\n", profileName)
	},
}

var editProfileCmd = &cobra.Command{
	Use:   "edit [profile-name]",
	Short: "Edit an existing profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		profileName := profileArg(cfg, args, "Select profile to edit", "")

		profile, exists := cfg.Profiles[profileName]
		if !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		profile.APIKey = mustPrompt(promptui.Prompt{Label: "Gemini API Key", Default: profile.APIKey, Mask: '*'})
		profile.Model = mustPrompt(promptui.Prompt{Label: "Model", Default: orDefaultText(profile.Model, config.DefaultModel)})
		profile.BaseURL = mustPrompt(promptui.Prompt{Label: "Base URL", Default: profile.BaseURL})

		cfg.Profiles[profileName] = profile
		mustSave(cfg)

		fmt.Printf("Profile '%s' updated successfully!\n", profileName)
	},
}

var deleteProfileCmd = &cobra.Command{
	Use:   "delete [profile-name]",
	Short: "Delete a profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		profileName := profileArg(cfg, args, "Select profile to delete", "")

		if _, exists := cfg.Profiles[profileName]; !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		confirmPrompt := promptui.Prompt{
			Label:     fmt.Sprintf("Delete profile '%s'? (y/N)", profileName),
			IsConfirm: true,
		}
		if _, err := confirmPrompt.Run(); err != nil {
			fmt.Println("Deletion cancelled")
			return
		}

		removeProfile(cfg, profileName)
		mustSave(cfg)

		fmt.Printf("Profile '%s' deleted successfully!\n", profileName)
	},
}

var switchProfileCmd = &cobra.Command{
	Use:   "switch [profile-name]",
	Short: "Switch to a different profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		if len(args) == 0 && len(profileNames(cfg, cfg.ActiveProfile)) == 0 {
			fmt.Println("No other profiles available to switch to")
			return
		}
		profileName := profileArg(cfg, args, "Select profile to switch to", cfg.ActiveProfile)

		if err := cfg.ActivateProfile(profileName); err != nil {
			log.Fatalf("%v", err)
		}
		mustSave(cfg)

		fmt.Printf("Switched to profile '%s'\n", profileName)
	},
}

var nasaKeyCmd = &cobra.Command{
	Use:   "nasa-key [key]",
	Short: "Set the NASA API key (empty resets to DEMO_KEY)",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()

		var key string
		if len(args) > 0 {
			key = args[0]
		} else {
			key = mustPrompt(promptui.Prompt{Label: "NASA API Key", Mask: '*'})
		}
		if key == "" {
			key = config.DefaultNASAKey
		}

		cfg.NASA.APIKey = key
		mustSave(cfg)

		fmt.Printf("NASA API key: %s\n", describeNASAKey(cfg))
	},
}

// removeProfile deletes name and keeps a valid active profile, recreating
// an empty default when the last profile goes.
func removeProfile(cfg *config.Config, name string) {
	delete(cfg.Profiles, name)
	if cfg.ActiveProfile != name {
		return
	}
	if remaining := profileNames(cfg, ""); len(remaining) > 0 {
		cfg.ActiveProfile = remaining[0]
		return
	}
	cfg.ActiveProfile = "default"
	cfg.Profiles["default"] = config.Profile{Model: config.DefaultModel}
}

// profileNames returns the profile names in a stable order, without exclude.
func profileNames(cfg *config.Config, exclude string) []string {
	names := slices.Sorted(maps.Keys(cfg.Profiles))
	return slices.DeleteFunc(names, func(n string) bool { return n == exclude })
}

func profileArg(cfg *config.Config, args []string, label, exclude string) string {
	if len(args) > 0 {
		return args[0]
	}
	names := profileNames(cfg, exclude)
	if len(names) == 0 {
		log.Fatalf("No profiles available")
	}
	prompt := promptui.Select{Label: label, Items: names}
	_, name, err := prompt.Run()
	if err != nil {
		log.Fatalf("Selection failed: %v", err)
	}
	return name
}

func describeNASAKey(cfg *config.Config) string {
	if cfg.GetNASAKey() == config.DefaultNASAKey {
		return config.DefaultNASAKey + " (rate limited demo key)"
	}
	return "Set (hidden for security)"
}

func mustLoadConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func mustSave(cfg *config.Config) {
	if err := cfg.Save(); err != nil {
		log.Fatalf("Failed to save config: %v", err)
	}
}

func mustPrompt(p promptui.Prompt) string {
	value, err := p.Run()
	if err != nil {
		log.Fatalf("Prompt failed: %v", err)
	}
	return value
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func orDefaultText(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func init() {
	profileCmd.AddCommand(listProfilesCmd)
	profileCmd.AddCommand(showProfileCmd)
	profileCmd.AddCommand(addProfileCmd)
	profileCmd.AddCommand(editProfileCmd)
	profileCmd.AddCommand(deleteProfileCmd)
	profileCmd.AddCommand(switchProfileCmd)
	profileCmd.AddCommand(nasaKeyCmd)
}
