// Copyright (C) 2025 l3montree GmbH
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
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/l3montree-dev/orghub/database/models"
	"github.com/l3montree-dev/orghub/database/repositories"
	"github.com/l3montree-dev/orghub/services"
	"github.com/l3montree-dev/orghub/shared"
	"github.com/spf13/cobra"
)

func NewOrganizationCommand() *cobra.Command {
	organization := cobra.Command{
		Use:   "organization",
		Short: "Manage organizations",
	}

	organization.AddCommand(newAddOrganizationCommand())
	organization.AddCommand(newImportOrganizationsCommand())
	organization.AddCommand(newImportOrganizationCoursesCommand())
	return &organization
}

func newAddOrganizationCommand() *cobra.Command {
	add := cobra.Command{
		Use:   "add",
		Short: "Add a single organization, reactivating it if it exists inactive",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			shortName, _ := cmd.Flags().GetString("short-name")
			name, _ := cmd.Flags().GetString("name")
			description, _ := cmd.Flags().GetString("description")

			db, err := shared.DatabaseFactory()
			if err != nil {
				return fmt.Errorf("could not connect to database: %w", err)
			}

			orgRepository := repositories.NewOrganizationRepository(db)
			orgCourseRepository := repositories.NewOrganizationCourseRepository(db)
			orgService := services.NewOrgService(orgRepository, orgCourseRepository, false)

			org, err := orgService.CreateOrganization(models.Organization{
				ShortName:   shortName,
				Name:        name,
				Description: description,
			})
			if err != nil {
				return err
			}

			slog.Info("organization in place", "id", org.ID, "shortName", org.ShortName, "active", org.Active)
			return nil
		},
	}

	add.Flags().String("short-name", "", "unique short name of the organization")
	add.Flags().String("name", "", "display name of the organization")
	add.Flags().String("description", "", "description of the organization")
	add.MarkFlagRequired("short-name") // nolint: errcheck
	add.MarkFlagRequired("name")       // nolint: errcheck
	return &add
}

// organizationImportFile is the json shape consumed by the import commands.
type organizationImportFile struct {
	Organizations []struct {
		ShortName   string `json:"short_name"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Logo        string `json:"logo"`
	} `json:"organizations"`
	Courses []struct {
		ShortName string `json:"short_name"`
		CourseKey string `json:"course_key"`
	} `json:"courses"`
}

func readImportFile(path string) (organizationImportFile, error) {
	var file organizationImportFile
	content, err := os.ReadFile(path)
	if err != nil {
		return file, fmt.Errorf("could not read import file: %w", err)
	}
	if err := json.Unmarshal(content, &file); err != nil {
		return file, fmt.Errorf("could not parse import file: %w", err)
	}
	return file, nil
}

func newImportOrganizationsCommand() *cobra.Command {
	importCmd := cobra.Command{
		Use:   "import <file.json>",
		Short: "Bulk import organizations from a json file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			inactive, _ := cmd.Flags().GetBool("inactive")

			file, err := readImportFile(args[0])
			if err != nil {
				return err
			}

			items := make([]models.Organization, 0, len(file.Organizations))
			for _, org := range file.Organizations {
				items = append(items, models.Organization{
					ShortName:   org.ShortName,
					Name:        org.Name,
					Description: org.Description,
					Logo:        org.Logo,
				})
			}

			db, err := shared.DatabaseFactory()
			if err != nil {
				return fmt.Errorf("could not connect to database: %w", err)
			}

			bulkService := services.NewBulkService(
				repositories.NewOrganizationRepository(db),
				repositories.NewOrganizationCourseRepository(db),
			)

			created, reactivated, err := bulkService.BulkAddOrganizations(items, dryRun, !inactive)
			if err != nil {
				return err
			}

			slog.Info("organization import finished",
				"created", len(created), "reactivated", len(reactivated), "dryRun", dryRun)
			return nil
		},
	}

	importCmd.Flags().Bool("dry-run", false, "compute the changes without writing them")
	importCmd.Flags().Bool("inactive", false, "create new organizations inactive and skip reactivation")
	return &importCmd
}

func newImportOrganizationCoursesCommand() *cobra.Command {
	importCourses := cobra.Command{
		Use:   "import-courses <file.json>",
		Short: "Bulk import organization-course linkages from a json file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			inactive, _ := cmd.Flags().GetBool("inactive")

			file, err := readImportFile(args[0])
			if err != nil {
				return err
			}

			pairs := make([]services.OrganizationCourseRequest, 0, len(file.Courses))
			for _, course := range file.Courses {
				pairs = append(pairs, services.OrganizationCourseRequest{
					Organization: models.Organization{ShortName: course.ShortName},
					CourseKey:    course.CourseKey,
				})
			}

			db, err := shared.DatabaseFactory()
			if err != nil {
				return fmt.Errorf("could not connect to database: %w", err)
			}

			bulkService := services.NewBulkService(
				repositories.NewOrganizationRepository(db),
				repositories.NewOrganizationCourseRepository(db),
			)

			created, reactivated, err := bulkService.BulkAddOrganizationCourses(pairs, dryRun, !inactive)
			if err != nil {
				return err
			}

			slog.Info("organization-course import finished",
				"created", len(created), "reactivated", len(reactivated), "dryRun", dryRun)
			return nil
		},
	}

	importCourses.Flags().Bool("dry-run", false, "compute the changes without writing them")
	importCourses.Flags().Bool("inactive", false, "create new linkages inactive and skip reactivation")
	return &importCourses
}
