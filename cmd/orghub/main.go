// Copyright (C) 2025 Tim Bastin, l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/l3montree-dev/orghub/cmd/orghub/api"
	"github.com/l3montree-dev/orghub/config"
	"github.com/l3montree-dev/orghub/controllers"
	"github.com/l3montree-dev/orghub/database"
	"github.com/l3montree-dev/orghub/database/repositories"
	"github.com/l3montree-dev/orghub/router"
	"github.com/l3montree-dev/orghub/services"
	"github.com/l3montree-dev/orghub/shared"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	cfg, err := config.Load(os.Getenv("ORGHUB_CONFIG_FILE"))
	if err != nil {
		slog.Error("failed to load config", "err", err)
		panic(errors.New("failed to load config"))
	}

	// Initialize database connection first
	db, err := shared.DatabaseFactory()
	if err != nil {
		slog.Error(err.Error()) // print detailed error message to stdout
		panic(errors.New("failed to setup database connection"))
	}

	// Run database migrations using the existing database connection
	if os.Getenv("DISABLE_AUTOMIGRATE") != "true" {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			slog.Error("failed to run database migrations", "error", err)
			panic(errors.New("failed to run database migrations"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Supply(db),
		fx.Supply(cfg),
		fx.Provide(api.NewServer),
		repositories.Module,
		services.Module,
		controllers.ControllerModule,
		router.RouterModule,

		// we need to invoke all routers to register their routes
		fx.Invoke(func(apiV0Router router.APIV0Router) {}),
		fx.Invoke(func(orgRouter router.OrgRouter) {}),
		fx.Invoke(func(server *echo.Echo) {}),
	).Run()
}
