package main

// @title Assistant Webhook API
// @version 1.0
// @description Fulfillment webhook for a conversational assistant: weather and Wikipedia answers.
// @BasePath /
// @schemes http https
