package export_fx

import (
	"os"

	"go.uber.org/fx"

	"quizmaker/internal/services"
)

var Module = fx.Provide(provideExportService)

func provideExportService(
	lookup services.LookupServiceInterface,
	entitlements services.EntitlementServiceInterface,
) services.ExportServiceInterface {
	return services.NewExportService(lookup, entitlements, services.FTPConfig{
		Addr:      os.Getenv("FTP_ADDR"),
		Username:  os.Getenv("FTP_USERNAME"),
		Password:  os.Getenv("FTP_PASSWORD"),
		RemoteDir: os.Getenv("FTP_REMOTE_DIR"),
		PublicURL: os.Getenv("FTP_PUBLIC_URL"),
	})
}
