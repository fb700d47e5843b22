package cmd

var (
	// Version is set during build time
	Version = "dev"
	// GitCommit is set during build time
	GitCommit = "unknown"
	// BuildDate is set during build time
	BuildDate = "unknown"
)

func init() {
	rootCmd.SetVersionTemplate("typed-install {{.Version}} (commit " + GitCommit + ", built " + BuildDate + ")\n")
}
