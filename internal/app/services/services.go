package services

// Services defined in this package:
// - AuthService: authentication, registration, token refresh, password reset
// - CourseService: course authoring, outline editing and catalog listing
// - CatalogFilter: pure filter/sort logic shared by listing code and tests
// - TechnologyService: technology tag management
// - InstituteService: institute management
// - UserService: profile and admin user management
