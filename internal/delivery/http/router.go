package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"schoolplanner/internal/delivery/http/controllers"
	"schoolplanner/internal/delivery/http/middleware"
	"schoolplanner/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(
	verifier domain.TokenVerifier,
	authController *controllers.AuthController,
	schoolController *controllers.SchoolController,
	catalogController *controllers.CatalogController,
	rosterController *controllers.RosterController,
	scheduleController *controllers.ScheduleController,
) *http.ServeMux {
	mux := http.NewServeMux()

	auth := middleware.RequireAuth(verifier)
	superAdmin := func(h http.HandlerFunc) http.HandlerFunc {
		return auth(middleware.RequireSuperAdmin(h))
	}

	// Auth
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Schools (super-admin tenant management)
	mux.HandleFunc("POST /schools", superAdmin(schoolController.CreateSchool))
	mux.HandleFunc("GET /schools", superAdmin(schoolController.ListSchools))
	mux.HandleFunc("GET /schools/{schoolID}", superAdmin(schoolController.GetSchool))
	mux.HandleFunc("PATCH /schools/{schoolID}", superAdmin(schoolController.UpdateSchool))
	mux.HandleFunc("PATCH /schools/{schoolID}/toggle-status", superAdmin(schoolController.ToggleSchoolStatus))
	mux.HandleFunc("DELETE /schools/{schoolID}", superAdmin(schoolController.DeleteSchool))

	// Catalog
	mux.HandleFunc("POST /schools/{schoolID}/levels", auth(catalogController.CreateLevel))
	mux.HandleFunc("GET /schools/{schoolID}/levels", auth(catalogController.ListLevels))
	mux.HandleFunc("DELETE /schools/{schoolID}/levels/{levelID}", auth(catalogController.DeleteLevel))
	mux.HandleFunc("POST /schools/{schoolID}/groups", auth(catalogController.CreateGroup))
	mux.HandleFunc("GET /schools/{schoolID}/groups", auth(catalogController.ListGroups))
	mux.HandleFunc("DELETE /schools/{schoolID}/groups/{groupID}", auth(catalogController.DeleteGroup))
	mux.HandleFunc("POST /schools/{schoolID}/subjects", auth(catalogController.CreateSubject))
	mux.HandleFunc("GET /schools/{schoolID}/subjects", auth(catalogController.ListSubjects))
	mux.HandleFunc("PUT /schools/{schoolID}/subjects/{subjectID}", auth(catalogController.UpdateSubject))
	mux.HandleFunc("DELETE /schools/{schoolID}/subjects/{subjectID}", auth(catalogController.DeleteSubject))
	mux.HandleFunc("POST /schools/{schoolID}/courses", auth(catalogController.CreateCourse))
	mux.HandleFunc("GET /schools/{schoolID}/courses", auth(catalogController.ListCourses))
	mux.HandleFunc("PUT /schools/{schoolID}/courses/{courseID}", auth(catalogController.UpdateCourse))
	mux.HandleFunc("DELETE /schools/{schoolID}/courses/{courseID}", auth(catalogController.DeleteCourse))

	// Roster
	mux.HandleFunc("POST /schools/{schoolID}/teachers", auth(rosterController.CreateTeacher))
	mux.HandleFunc("GET /schools/{schoolID}/teachers", auth(rosterController.ListTeachers))
	mux.HandleFunc("PUT /schools/{schoolID}/teachers/{teacherID}", auth(rosterController.UpdateTeacher))
	mux.HandleFunc("DELETE /schools/{schoolID}/teachers/{teacherID}", auth(rosterController.DeleteTeacher))
	mux.HandleFunc("POST /schools/{schoolID}/students", auth(rosterController.CreateStudent))
	mux.HandleFunc("GET /schools/{schoolID}/students", auth(rosterController.ListStudents))
	mux.HandleFunc("PUT /schools/{schoolID}/students/{studentID}", auth(rosterController.UpdateStudent))
	mux.HandleFunc("DELETE /schools/{schoolID}/students/{studentID}", auth(rosterController.DeleteStudent))

	// Schedule
	mux.HandleFunc("GET /schools/{schoolID}/schedule", auth(scheduleController.GetSchedule))
	mux.HandleFunc("PUT /schools/{schoolID}/schedule", auth(scheduleController.ReplaceSchedule))
	mux.HandleFunc("GET /schools/{schoolID}/schedule/layout", auth(scheduleController.GetScheduleLayout))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
