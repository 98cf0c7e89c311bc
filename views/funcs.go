package views

import "github.com/meiq/portfolio"

// Funcs returns the standard view set for wiring into the engine. Embedders
// can take this and override individual entries.
func Funcs() portfolio.ViewFuncs {
	return portfolio.ViewFuncs{
		Home:        Home,
		ProfileCard: ProfileCard,
		About:       About,

		Projects:     Projects,
		ProjectsGrid: ProjectsGrid,

		Certifications: Certifications,
		Education:      Education,

		Contact: Contact,

		AdminLogin:     AdminLogin,
		AdminDashboard: AdminDashboard,
		AdminProfile:   AdminProfile,

		AdminProjects:          AdminProjects,
		AdminProjectForm:       AdminProjectForm,
		AdminCertifications:    AdminCertifications,
		AdminCertificationForm: AdminCertificationForm,
		AdminEducation:         AdminEducation,
		AdminEducationForm:     AdminEducationForm,
		AdminMessages:          AdminMessages,

		NotFound:    NotFound,
		ServerError: ServerError,
	}
}
