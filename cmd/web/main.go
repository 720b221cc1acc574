// @title           Job Board API
// @version         1.0
// @description     REST API for the job-listing board: employers post jobs, job seekers browse, filter and apply.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization

package main

import "jobboard_backend/internal/app"

func main() {
	app.Run()
}
