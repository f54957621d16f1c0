// Package loader provides the feature loading system.
//
// Each feature implements Feature: a name, an enabled flag and route
// registration. The start command registers the models and garden features
// with a Manager and calls LoadAll once the global middleware is in place.
//
//	mgr := loader.NewManager(logg)
//	mgr.Register(models.NewFeature(svc, logg))
//	if err := mgr.LoadAll(app); err != nil {
//	    logg.Fatal("Failed to load features", zap.Error(err))
//	}
package loader
