// Package swagger contains the generated OpenAPI document of the session API.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/session/characters": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"session"
				],
				"summary": "List Characters",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Character"
							}
						}
					}
				},
				"description": "Returns the session's cached characters in order."
			},
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"session"
				],
				"summary": "Create Character",
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/characters.CreateResponse"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"description": "Creates a character. If the remote is read-only or unreachable the character is kept locally.",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "New character",
						"name": "character",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.Candidate"
						}
					}
				]
			}
		},
		"/session/characters/refresh": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"session"
				],
				"summary": "Refresh Characters",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Character"
							}
						}
					},
					"502": {
						"description": "Remote unavailable",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"description": "Replaces the cache with the remote collection and selects the first character."
			}
		},
		"/session/current": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"session"
				],
				"summary": "Current Character",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Character"
						}
					},
					"404": {
						"description": "Nothing selected",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/session/current/{id}": {
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"session"
				],
				"summary": "Select Character",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Character"
						}
					},
					"400": {
						"description": "Invalid id",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"502": {
						"description": "Lookup failed",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "Character ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/session/current/votes": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"session"
				],
				"summary": "Vote",
				"responses": {
					"202": {
						"description": "Accepted",
						"schema": {
							"$ref": "#/definitions/characters.VoteResponse"
						}
					},
					"409": {
						"description": "Nothing selected",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"description": "Adds one vote immediately; persistence happens in the background."
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"session"
				],
				"summary": "Reset Votes",
				"responses": {
					"202": {
						"description": "Accepted",
						"schema": {
							"$ref": "#/definitions/characters.VoteResponse"
						}
					},
					"409": {
						"description": "Nothing selected",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"description": "Sets the votes to zero immediately; persistence happens in the background."
			}
		},
		"/session/status": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"session"
				],
				"summary": "Status",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/notify.Notification"
						}
					},
					"204": {
						"description": "No status yet"
					}
				}
			}
		}
	},
	"definitions": {
		"characters.CreateResponse": {
			"type": "object",
			"properties": {
				"character": {
					"$ref": "#/definitions/models.Character"
				},
				"confirmed": {
					"type": "boolean"
				}
			}
		},
		"characters.VoteResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"votes": {
					"type": "integer"
				}
			}
		},
		"models.Candidate": {
			"type": "object",
			"properties": {
				"image": {
					"type": "string"
				},
				"name": {
					"type": "string"
				}
			}
		},
		"models.Character": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"image": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"votes": {
					"type": "integer"
				}
			}
		},
		"notify.Notification": {
			"type": "object",
			"properties": {
				"level": {
					"type": "string"
				},
				"message": {
					"type": "string"
				},
				"time": {
					"type": "string"
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Flatacuties Session API",
	Description:      "Character vote session with optimistic updates synced to a characters API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
