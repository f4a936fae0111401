// Package environment names the deployment environments the service runs in.
//
// The environment decides security-relevant defaults elsewhere in the module:
// in Production the session cookie is marked Secure and SameSite=Strict, and
// the logger switches to JSON output and tags every record with env.
//
//	env := environment.Parse(cfg.AppEnv)
//	if env.IsProduction() {
//		// ...
//	}
package environment
