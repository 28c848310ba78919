// @title           listing-writer API
// @version         1.0
// @description     Generates fair-housing-compliant real estate marketing copy from a property description.
// @BasePath        /
package api
