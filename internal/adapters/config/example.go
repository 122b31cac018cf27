package config

// ExampleJSON is shown to the operator whenever the configuration cannot be
// loaded. Only the three required keys appear; everything else has a default.
const ExampleJSON = `{
  "userDataPath": "C:\\Path\\To\\Chrome\\User Data",
  "profiles": ["Default", "Profile 1", "Profile 2"],
  "saveDir": "C:\\Path\\To\\Save\\Videos"
}`
